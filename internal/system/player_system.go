// internal/system/player_system.go
package system

import (
	"math"
	"time"

	"go-chicken-run/internal/component"
	"go-chicken-run/internal/config"
	"go-chicken-run/internal/entity"
	"go-chicken-run/internal/event"
	"go-chicken-run/pkg/utils"
)

// PlayerSystem applies movement, dashing, damage and regeneration to the player.
type PlayerSystem struct {
	world           *entity.World
	settings        config.PlayerSettings
	screen          component.Size
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(world *entity.World, settings config.Settings, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		world:           world,
		settings:        settings.Player,
		screen:          component.Size{W: float64(settings.WindowWidth), H: float64(settings.WindowHeight)},
		eventDispatcher: eventDispatcher,
	}
}

// Move steps the player once along its facing. Leaving the screen costs
// BorderDamage and snaps the player back inside.
func (s *PlayerSystem) Move(now time.Time) {
	p := s.world.Player
	s.step(p.Direction.Vector().Scale(p.Speed), s.settings.BorderDamage, now)
}

// Dash spends DashCost stamina to jump DashMultiplier steps in d without
// turning. Nothing happens when stamina is short.
func (s *PlayerSystem) Dash(d component.Direction, now time.Time) bool {
	p := s.world.Player
	if p.Stamina < s.settings.DashCost {
		return false
	}
	p.Stamina -= s.settings.DashCost
	s.step(d.Vector().Scale(p.Speed*s.settings.DashMultiplier), s.settings.BorderDashDamage, now)
	return true
}

func (s *PlayerSystem) step(delta component.Vec2, borderDamage int, now time.Time) {
	p := s.world.Player
	outcome := p.TryMove(delta, s.screen)
	if outcome.OutOfBounds {
		s.Damage(borderDamage, now)
		p.Position = outcome.Position
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.BorderHit,
			Data: event.PlayerHitData{Damage: borderDamage, Health: p.Health},
		})
	}
	p.AdvanceAnimation(config.AnimationSpeed)
}

// Damage lowers health (never below zero) and restarts the heal delay.
// Reaching zero marks the player dead and emits PlayerDied exactly once.
func (s *PlayerSystem) Damage(amount int, now time.Time) {
	p := s.world.Player
	if amount < 0 {
		amount = 0
	}
	p.Health = utils.ClampInt(p.Health-amount, 0, p.MaxHealth)
	p.DamageTimestamp = now
	p.TimeToHeal = time.Duration(math.Floor(2+p.HealthRegen)) * time.Second

	if p.Health == 0 && !p.Dead {
		p.Dead = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	}
}

// Heal restores one point once TimeToHeal has passed since the last damage
// timestamp. Afterwards it heals every HealCooldown, stepping the timestamp
// by HealStep.
func (s *PlayerSystem) Heal(now time.Time) {
	p := s.world.Player
	if p.Dead || p.Health >= p.MaxHealth {
		return
	}
	if now.Sub(p.DamageTimestamp) < p.TimeToHeal {
		return
	}
	p.TimeToHeal = s.settings.HealCooldown
	p.DamageTimestamp = p.DamageTimestamp.Add(s.settings.HealStep)
	p.Health = utils.ClampInt(p.Health+1, 0, p.MaxHealth)
}

func (s *PlayerSystem) StaminaRegen() {
	p := s.world.Player
	p.Stamina = utils.ClampInt(p.Stamina+1, 0, p.MaxStamina)
}

// DamageOverlayAlpha is the opacity of the red damage overlay, stronger as
// health drops. Zero outside the invincibility window.
func (s *PlayerSystem) DamageOverlayAlpha() float64 {
	p := s.world.Player
	if !p.IsInvincible || p.MaxHealth <= 0 {
		return 0
	}
	return 255 - 255*float64(p.Health)/float64(p.MaxHealth)
}
