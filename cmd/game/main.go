// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"

	"go-chicken-run/internal/app"
	"go-chicken-run/internal/assets"
	"go-chicken-run/internal/config"
	"go-chicken-run/internal/input"
	"go-chicken-run/internal/state"
	"go-chicken-run/internal/stats"
	"go-chicken-run/internal/ui"
	"go-chicken-run/internal/utils"
	"go-chicken-run/pkg/render"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	settings       config.Settings
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.settings.WindowWidth, a.settings.WindowHeight
}

func main() {
	configPath := flag.String("config", "settings.yaml", "path to the YAML settings file")
	statsPath := flag.String("stats", "", "override the stats file path")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).With("run", runID)
	slog.SetDefault(logger)

	if *pprofAddr != "" {
		go func() {
			logger.Info("pprof listening", "addr", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *statsPath != "" {
		settings.StatsPath = *statsPath
	}

	store, err := stats.Open(settings.StatsPath)
	if err != nil {
		log.Fatal(err)
	}

	clock := utils.SystemClock{}
	game, err := app.NewGame(settings, app.Options{
		Clock:  clock,
		Stats:  store,
		Logger: logger,
		RunID:  runID,
	})
	if err != nil {
		log.Fatal(err)
	}

	sounds := assets.NewSoundBank(settings, logger)
	sounds.Attach(game.EventDispatcher)

	sprites := assets.NewSpriteManager(settings.AssetsDir, logger)
	shared := &state.Shared{
		Settings: settings,
		Session:  game,
		Keymap:   input.NewKeymap(settings.KeyboardLayout),
		Clock:    clock,
		Sprites:  sprites,
		Tiles: render.NewTileRenderer(game.Map(), settings.TileSize, sprites, render.MapColors{
			BackgroundColor: config.BackgroundColor,
		}),
		HUD:    ui.NewHUD(settings),
		Fonts:  ui.LoadFonts(),
		Stats:  store,
		Logger: logger,
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, shared))

	appGame := &AppGame{
		stateMachine:   sm,
		settings:       settings,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Chicken Run")
	ebiten.SetFullscreen(settings.Fullscreen)
	ebiten.SetTPS(settings.FPS)

	logger.Info("starting", "config", *configPath, "stats", settings.StatsPath, "seed", settings.Seed)
	if err := ebiten.RunGame(appGame); err != nil {
		log.Fatal(err)
	}
	logger.Info("bye")
}
