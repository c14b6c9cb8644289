// internal/system/combat.go
package system

import (
	"time"

	"go-chicken-run/internal/component"
	"go-chicken-run/internal/entity"
	"go-chicken-run/internal/event"
)

// CombatSystem resolves contact between the player and live enemies.
type CombatSystem struct {
	world           *entity.World
	players         *PlayerSystem
	invincibility   time.Duration
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, players *PlayerSystem, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		world:           world,
		players:         players,
		invincibility:   players.settings.Invincibility,
		eventDispatcher: eventDispatcher,
	}
}

// IsAttacked lets the first enemy touching the player, in live-set order,
// deal its damage and open a new invincibility window. A burning player
// takes no damage. Reports whether a hit landed.
func (s *CombatSystem) IsAttacked(now time.Time) bool {
	p := s.world.Player
	if p.OnFire || now.Sub(p.InvincibilityStart) < s.invincibility {
		return false
	}
	p.IsInvincible = false

	rect := p.Rect()
	for _, e := range s.world.Enemies {
		if !rect.Intersects(e.Rect()) {
			continue
		}
		s.players.Damage(e.Damage, now)
		p.IsInvincible = true
		p.InvincibilityStart = now
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.PlayerHit,
			Data: event.PlayerHitData{Damage: e.Damage, Health: p.Health},
		})
		return true
	}
	return false
}

// OnFire removes every enemy the burning player touches and returns the
// number of kills.
func (s *CombatSystem) OnFire(now time.Time) int {
	p := s.world.Player
	if !p.OnFire {
		return 0
	}

	rect := p.Rect()
	var killed []*component.Enemy
	s.world.RemoveEnemiesIf(func(e *component.Enemy) bool {
		if rect.Intersects(e.Rect()) {
			killed = append(killed, e)
			return true
		}
		return false
	})

	for _, e := range killed {
		p.KillCount++
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.EnemyKilled,
			Data: event.EnemyKilledData{EnemyID: e.ID, Archetype: e.Archetype},
		})
	}
	return len(killed)
}
