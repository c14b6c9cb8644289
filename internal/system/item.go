// internal/system/item.go
package system

import (
	"time"

	"go-chicken-run/internal/component"
	"go-chicken-run/internal/config"
	"go-chicken-run/internal/entity"
	"go-chicken-run/internal/event"
	"go-chicken-run/internal/utils"
)

// ItemSystem runs the fire power-up: random spawn, pickup and effect expiry.
type ItemSystem struct {
	world           *entity.World
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher

	width, height int
	size          float64
	spawnChance   float64
	effect        time.Duration
}

func NewItemSystem(world *entity.World, settings config.Settings, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *ItemSystem {
	return &ItemSystem{
		world:           world,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		width:           settings.WindowWidth,
		height:          settings.WindowHeight,
		size:            settings.ItemSize(),
		spawnChance:     settings.Item.SpawnChance,
		effect:          settings.Item.Effect,
	}
}

// Tick rolls for a spawn while no pickup is on the map, consumes a pickup
// the player touches, and ends an effect whose expiry has passed.
func (s *ItemSystem) Tick(now time.Time) {
	pickup, player := s.world.Pickup, s.world.Player

	if !pickup.Spawned && s.rng.Chance(s.spawnChance) {
		s.spawnRandom()
	}

	switch {
	case pickup.Spawned && pickup.Rect.Intersects(player.Rect()):
		pickup.Spawned = false
		pickup.EffectActive = true
		pickup.EffectExpiry = now.Add(s.effect)
		player.OnFire = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.ItemPickedUp})
	case pickup.EffectActive && !now.Before(pickup.EffectExpiry):
		pickup.EffectActive = false
		player.OnFire = false
		s.eventDispatcher.Dispatch(event.Event{Type: event.ItemExpired})
	}
}

// ForceSpawn places the pickup at rect regardless of chance.
func (s *ItemSystem) ForceSpawn(rect component.Rect) {
	s.world.Pickup.Rect = rect
	s.world.Pickup.Spawned = true
	s.eventDispatcher.Dispatch(event.Event{Type: event.ItemSpawned})
}

func (s *ItemSystem) spawnRandom() {
	maxX := int(float64(s.width) - s.size)
	maxY := int(float64(s.height) - s.size)
	s.ForceSpawn(component.Rect{
		X: float64(s.rng.IntRange(0, maxX)),
		Y: float64(s.rng.IntRange(0, maxY)),
		W: s.size,
		H: s.size,
	})
}
