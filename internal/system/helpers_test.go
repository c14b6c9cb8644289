package system

import (
	"testing"
	"time"

	"go-chicken-run/internal/component"
	"go-chicken-run/internal/config"
	"go-chicken-run/internal/defs"
	"go-chicken-run/internal/entity"
	"go-chicken-run/internal/event"
	"go-chicken-run/internal/utils"
)

var epoch = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type rig struct {
	settings config.Settings
	world    *entity.World
	events   *eventLog
	players  *PlayerSystem
	combat   *CombatSystem
	movement *MovementSystem
	waves    *WaveSystem
	items    *ItemSystem
	rng      *utils.PRNGService
}

func newRig(t *testing.T, mutate ...func(*config.Settings)) *rig {
	t.Helper()
	s := config.Default()
	for _, m := range mutate {
		m(&s)
	}

	tile := float64(s.TileSize)
	world := entity.NewWorld(component.NewPlayer(s.Player, component.Size{W: tile, H: tile}, epoch))
	dispatcher := event.NewDispatcher()
	log := &eventLog{}
	for _, typ := range []event.EventType{
		event.EnemyKilled, event.PlayerHit, event.BorderHit, event.PlayerDied,
		event.ItemSpawned, event.ItemPickedUp, event.ItemExpired, event.WaveSpawned,
	} {
		dispatcher.Subscribe(typ, log)
	}

	rng := utils.NewPRNGService(11)
	players := NewPlayerSystem(world, s, dispatcher)
	movement := NewMovementSystem(world, s)
	return &rig{
		settings: s,
		world:    world,
		events:   log,
		players:  players,
		combat:   NewCombatSystem(world, players, dispatcher),
		movement: movement,
		waves:    NewWaveSystem(world, s, defs.DefaultEnemies(), rng, movement, dispatcher, epoch),
		items:    NewItemSystem(world, s, rng, dispatcher),
		rng:      rng,
	}
}

func (r *rig) addEnemy(x, y float64, dir component.Direction, speed float64, damage int) *component.Enemy {
	tile := float64(r.settings.TileSize)
	e := &component.Enemy{
		Actor:     component.NewActor(component.Vec2{X: x, Y: y}, component.Size{W: tile, H: tile}, dir, speed),
		Damage:    damage,
		Archetype: "knight",
		Sprite:    "knight",
		Behavior:  component.Straight{},
	}
	r.world.AddEnemy(e)
	return e
}
