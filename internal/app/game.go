// internal/app/game.go
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"go-chicken-run/internal/component"
	"go-chicken-run/internal/config"
	"go-chicken-run/internal/defs"
	"go-chicken-run/internal/entity"
	"go-chicken-run/internal/event"
	"go-chicken-run/internal/stats"
	"go-chicken-run/internal/system"
	"go-chicken-run/internal/utils"
	"go-chicken-run/pkg/tilemap"
)

// Options carries the collaborators a Game is built with. Zero values pick
// the production defaults.
type Options struct {
	Clock   utils.Clock
	Stats   stats.Counter
	Enemies *defs.EnemyLibrary
	Logger  *slog.Logger
	RunID   string
}

// Game owns one play session: the world, the systems that drive it and the
// phase machine around them.
type Game struct {
	Settings        config.Settings
	Clock           utils.Clock
	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	Enemies         *defs.EnemyLibrary
	RunID           string

	World          *entity.World
	TileMap        *tilemap.TileMap
	PlayerSystem   *system.PlayerSystem
	CombatSystem   *system.CombatSystem
	MovementSystem *system.MovementSystem
	WaveSystem     *system.WaveSystem
	ItemSystem     *system.ItemSystem

	recorder *stats.Recorder
	logger   *slog.Logger

	phase        component.GamePhase
	startTime    time.Time
	finalSeconds int
	ticks        uint64
}

// NewGame validates settings and builds a game in the menu phase.
func NewGame(settings config.Settings, opts Options) (*Game, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	if opts.Clock == nil {
		opts.Clock = utils.SystemClock{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}
	if opts.Enemies == nil {
		lib, err := defs.LoadEnemyDefinitions(settings.Waves.EnemyDefs)
		if err != nil {
			return nil, fmt.Errorf("failed to load enemies: %w", err)
		}
		opts.Enemies = lib
	}

	g := &Game{
		Settings:        settings,
		Clock:           opts.Clock,
		Rng:             utils.NewPRNGService(settings.Seed),
		EventDispatcher: event.NewDispatcher(),
		Enemies:         opts.Enemies,
		RunID:           opts.RunID,
		logger:          opts.Logger.With("run", opts.RunID),
	}

	g.recorder = stats.NewRecorder(opts.Stats, g.logger)
	g.recorder.Attach(g.EventDispatcher)

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.PlayerDied, listener)
	g.EventDispatcher.Subscribe(event.WaveSpawned, listener)

	if err := g.build(); err != nil {
		return nil, err
	}
	return g, nil
}

// build creates a fresh world, tile map and systems. The dispatcher and its
// subscribers survive so external listeners keep working after a reset.
func (g *Game) build() error {
	tiles, err := tilemap.FromSettings(g.Settings)
	if err != nil {
		return fmt.Errorf("failed to generate tile map: %w", err)
	}

	now := g.Clock.Now()
	tile := float64(g.Settings.TileSize)
	player := component.NewPlayer(g.Settings.Player, component.Size{W: tile, H: tile}, now)

	g.World = entity.NewWorld(player)
	g.TileMap = tiles
	g.PlayerSystem = system.NewPlayerSystem(g.World, g.Settings, g.EventDispatcher)
	g.CombatSystem = system.NewCombatSystem(g.World, g.PlayerSystem, g.EventDispatcher)
	g.MovementSystem = system.NewMovementSystem(g.World, g.Settings)
	g.WaveSystem = system.NewWaveSystem(g.World, g.Settings, g.Enemies, g.Rng, g.MovementSystem, g.EventDispatcher, now)
	g.ItemSystem = system.NewItemSystem(g.World, g.Settings, g.Rng, g.EventDispatcher)

	g.phase = component.MenuPhase
	g.startTime = time.Time{}
	g.finalSeconds = 0
	g.ticks = 0
	return nil
}

func (g *Game) Phase() component.GamePhase { return g.phase }

// Map is the current tile map. Reset replaces it.
func (g *Game) Map() *tilemap.TileMap { return g.TileMap }

// Start begins play from the menu and counts a new game.
func (g *Game) Start() {
	if g.phase != component.MenuPhase {
		return
	}
	g.phase = component.PlayingPhase
	g.startTime = g.Clock.Now()
	g.recorder.Add(stats.GamesPlayed, 1)
	g.logger.Info("game started")
}

// Tick advances the simulation by one fixed step. Only the playing phase
// moves anything.
func (g *Game) Tick() {
	if g.phase != component.PlayingPhase {
		return
	}
	now := g.Clock.Now()
	g.ticks++

	g.PlayerSystem.Move(now)
	g.CombatSystem.OnFire(now)
	g.CombatSystem.IsAttacked(now)
	g.PlayerSystem.Heal(now)
	g.PlayerSystem.StaminaRegen()
	g.WaveSystem.Update(now)
	g.ItemSystem.Tick(now)

	if g.World.Player.Dead {
		g.gameOver(now)
	}
}

func (g *Game) gameOver(now time.Time) {
	g.phase = component.GameOverPhase
	g.finalSeconds = g.elapsedAt(now)
	g.recorder.Add(stats.Deaths, 1)
	g.recorder.Add(stats.SecondsPlayed, g.finalSeconds)
	g.logger.Info("game over",
		"seconds", g.finalSeconds,
		"kills", g.World.Player.KillCount,
		"ticks", g.ticks)
}

// SetDirection turns the player.
func (g *Game) SetDirection(d component.Direction) {
	if g.phase != component.PlayingPhase {
		return
	}
	g.World.Player.SetDirection(d)
}

// Dash dashes along the current facing.
func (g *Game) Dash() bool {
	if g.phase != component.PlayingPhase {
		return false
	}
	return g.PlayerSystem.Dash(g.World.Player.Direction, g.Clock.Now())
}

// TogglePause flips between playing and paused.
func (g *Game) TogglePause() {
	switch g.phase {
	case component.PlayingPhase:
		g.phase = component.PausedPhase
	case component.PausedPhase:
		g.phase = component.PlayingPhase
	}
}

// End quits the current run. Time spent in a running game is recorded.
func (g *Game) End() {
	switch g.phase {
	case component.PlayingPhase, component.PausedPhase:
		g.finalSeconds = g.elapsedAt(g.Clock.Now())
		g.recorder.Add(stats.SecondsPlayed, g.finalSeconds)
		g.logger.Info("game ended", "seconds", g.finalSeconds)
	case component.EndedPhase:
		return
	}
	g.phase = component.EndedPhase
}

// Reset discards the run and returns to the menu with a fresh world.
func (g *Game) Reset() error {
	return g.build()
}

// ElapsedSeconds is the whole seconds since Start, frozen once the run is over.
func (g *Game) ElapsedSeconds() int {
	switch g.phase {
	case component.PlayingPhase, component.PausedPhase:
		return g.elapsedAt(g.Clock.Now())
	case component.MenuPhase:
		return 0
	}
	return g.finalSeconds
}

func (g *Game) elapsedAt(now time.Time) int {
	if g.startTime.IsZero() {
		return 0
	}
	return int(now.Sub(g.startTime) / time.Second)
}

// GameEventListener logs notable gameplay events.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerDied:
		l.game.logger.Debug("player died")
	case event.WaveSpawned:
		if data, ok := e.Data.(event.WaveSpawnedData); ok {
			l.game.logger.Debug("wave spawned", "count", data.Count, "live", l.game.World.EnemyCount())
		}
	}
}
