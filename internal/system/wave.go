// internal/system/wave.go
package system

import (
	"log/slog"
	"time"

	"go-chicken-run/internal/component"
	"go-chicken-run/internal/config"
	"go-chicken-run/internal/defs"
	"go-chicken-run/internal/entity"
	"go-chicken-run/internal/event"
	"go-chicken-run/internal/utils"
)

// WaveSystem spawns a wave of enemies on the screen edges every interval
// and drives the movement system each tick.
type WaveSystem struct {
	world           *entity.World
	library         *defs.EnemyLibrary
	spawnTable      []defs.SpawnEntry
	rng             *utils.PRNGService
	movement        *MovementSystem
	eventDispatcher *event.Dispatcher

	width, height int
	enemySize     component.Size
	interval      time.Duration
	maxPerWave    int
	lastWave      time.Time
}

func NewWaveSystem(
	world *entity.World,
	settings config.Settings,
	library *defs.EnemyLibrary,
	rng *utils.PRNGService,
	movement *MovementSystem,
	eventDispatcher *event.Dispatcher,
	now time.Time,
) *WaveSystem {
	tile := float64(settings.TileSize)
	return &WaveSystem{
		world:           world,
		library:         library,
		spawnTable:      library.SpawnTable(),
		rng:             rng,
		movement:        movement,
		eventDispatcher: eventDispatcher,
		width:           settings.WindowWidth,
		height:          settings.WindowHeight,
		enemySize:       component.Size{W: tile, H: tile},
		interval:        settings.Waves.Interval,
		maxPerWave:      settings.Waves.MaxEnemies,
		lastWave:        now,
	}
}

// Update spawns a wave once interval has passed since the previous one, then
// moves and prunes the live set.
func (s *WaveSystem) Update(now time.Time) {
	if now.Sub(s.lastWave) >= s.interval {
		s.SpawnWave(now)
		s.lastWave = now
	}
	s.movement.Update(now)
}

// LastWave is when the previous wave spawned, or when the system was built.
func (s *WaveSystem) LastWave() time.Time {
	return s.lastWave
}

// SpawnWave adds between 1 and maxPerWave enemies and returns the count.
func (s *WaveSystem) SpawnWave(now time.Time) int {
	count := s.rng.IntRange(1, s.maxPerWave)
	spawned := 0
	for i := 0; i < count; i++ {
		if s.spawnEnemy(now) {
			spawned++
		}
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.WaveSpawned,
		Data: event.WaveSpawnedData{Count: spawned},
	})
	return spawned
}

func (s *WaveSystem) spawnEnemy(now time.Time) bool {
	id := s.rng.ChooseWeighted(s.spawnTable)
	def, ok := s.library.Get(id)
	if !ok {
		slog.Error("enemy definition not found", "id", id)
		return false
	}

	pos, dir := s.edgeSpawn()
	enemy := &component.Enemy{
		Actor:     component.NewActor(pos, s.enemySize, dir, s.rng.FloatRange(def.SpeedMin, def.SpeedMax)),
		Damage:    def.Damage,
		Archetype: def.ID,
		Sprite:    def.Sprite,
		Behavior:  s.behaviorFor(def, now),
	}
	s.world.AddEnemy(enemy)
	return true
}

// edgeSpawn picks a uniform screen edge and a position on it, facing inwards.
func (s *WaveSystem) edgeSpawn() (component.Vec2, component.Direction) {
	switch s.rng.Intn(4) {
	case 0: // top
		return component.Vec2{X: float64(s.rng.IntRange(1, s.width-1)), Y: 0}, component.Down
	case 1: // bottom
		return component.Vec2{X: float64(s.rng.IntRange(1, s.width-1)), Y: float64(s.height)}, component.Up
	case 2: // left
		return component.Vec2{X: 0, Y: float64(s.rng.IntRange(1, s.height-1))}, component.Right
	default: // right
		return component.Vec2{X: float64(s.width), Y: float64(s.rng.IntRange(1, s.height-1))}, component.Left
	}
}

func (s *WaveSystem) behaviorFor(def defs.EnemyDefinition, now time.Time) component.Behavior {
	switch def.Behavior {
	case defs.BehaviorErratic:
		return component.NewErratic(s.rng, def.WaitMin, def.WaitMax, now)
	default:
		return component.Straight{}
	}
}
