package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-chicken-run/internal/component"
	"go-chicken-run/internal/config"
	"go-chicken-run/internal/event"
)

func TestMoveInsideScreen(t *testing.T) {
	r := newRig(t, func(s *config.Settings) { s.Player.Speed = 5 })
	p := r.world.Player
	p.Position = component.Vec2{X: 100, Y: 100}
	p.SetDirection(component.Up)

	r.players.Move(epoch)

	assert.Equal(t, component.Vec2{X: 100, Y: 95}, p.Position)
	assert.Equal(t, 100, p.Health)
	assert.InDelta(t, 0.1, p.Frame, 1e-9)
}

func TestMoveIntoBorderDamagesAndClamps(t *testing.T) {
	r := newRig(t)
	p := r.world.Player
	p.SetDirection(component.Left)

	r.players.Move(epoch)

	assert.Equal(t, 0.0, p.Position.X)
	assert.Equal(t, 90, p.Health)
	assert.Equal(t, 1, r.events.count(event.BorderHit))

	p.Position = component.Vec2{X: 970, Y: 300}
	p.SetDirection(component.Right)
	r.players.Move(epoch)
	assert.Equal(t, component.Vec2{X: 975, Y: 300}, p.Position)
	assert.Equal(t, 80, p.Health)
}

func TestDashNeedsStamina(t *testing.T) {
	r := newRig(t)
	p := r.world.Player
	p.Position = component.Vec2{X: 400, Y: 400}
	p.Stamina = 39

	assert.False(t, r.players.Dash(component.Right, epoch))
	assert.Equal(t, 39, p.Stamina)
	assert.Equal(t, component.Vec2{X: 400, Y: 400}, p.Position)
	assert.Equal(t, 0.0, p.Frame)

	p.Stamina = 40
	assert.True(t, r.players.Dash(component.Right, epoch))
	assert.Equal(t, 0, p.Stamina)
	assert.Equal(t, component.Vec2{X: 450, Y: 400}, p.Position)
	assert.Equal(t, component.Down, p.Direction, "dash keeps facing")
}

func TestDashIntoBorder(t *testing.T) {
	r := newRig(t)
	p := r.world.Player
	p.Position = component.Vec2{X: 20, Y: 400}

	require.True(t, r.players.Dash(component.Left, epoch))
	assert.Equal(t, 0.0, p.Position.X)
	assert.Equal(t, 0, p.Health)
	assert.True(t, p.Dead)
	assert.Equal(t, 1, r.events.count(event.PlayerDied))
}

func TestDamageClampsAndDiesOnce(t *testing.T) {
	r := newRig(t)
	p := r.world.Player

	r.players.Damage(30, epoch)
	assert.Equal(t, 70, p.Health)
	assert.Equal(t, epoch, p.DamageTimestamp)
	assert.Equal(t, 2*time.Second, p.TimeToHeal)

	r.players.Damage(500, epoch.Add(time.Second))
	assert.Equal(t, 0, p.Health)
	r.players.Damage(10, epoch.Add(2*time.Second))
	assert.Equal(t, 0, p.Health)
	assert.Equal(t, 1, r.events.count(event.PlayerDied))
}

func TestTimeToHealIsRecomputedEachHit(t *testing.T) {
	r := newRig(t, func(s *config.Settings) { s.Player.HealthRegen = 1.5 })
	p := r.world.Player
	r.players.Damage(1, epoch)
	r.players.Damage(1, epoch)
	r.players.Damage(1, epoch)
	assert.Equal(t, 3*time.Second, p.TimeToHeal)
}

func TestHealSchedule(t *testing.T) {
	r := newRig(t)
	p := r.world.Player
	r.players.Damage(10, epoch)

	r.players.Heal(epoch.Add(1999 * time.Millisecond))
	assert.Equal(t, 90, p.Health)

	r.players.Heal(epoch.Add(2 * time.Second))
	assert.Equal(t, 91, p.Health)
	assert.Equal(t, 5*time.Second, p.TimeToHeal)
	assert.Equal(t, epoch.Add(time.Second), p.DamageTimestamp)

	// next point is due HealCooldown after the stepped timestamp
	r.players.Heal(epoch.Add(5 * time.Second))
	assert.Equal(t, 91, p.Health)
	r.players.Heal(epoch.Add(6 * time.Second))
	assert.Equal(t, 92, p.Health)
}

func TestHealNoopAtMax(t *testing.T) {
	r := newRig(t)
	p := r.world.Player
	before := p.DamageTimestamp
	r.players.Heal(epoch.Add(time.Hour))
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, before, p.DamageTimestamp)
}

func TestStaminaRegenCaps(t *testing.T) {
	r := newRig(t)
	p := r.world.Player
	p.Stamina = 98
	r.players.StaminaRegen()
	r.players.StaminaRegen()
	r.players.StaminaRegen()
	assert.Equal(t, 100, p.Stamina)
}

func TestDamageOverlayAlpha(t *testing.T) {
	r := newRig(t)
	p := r.world.Player
	assert.Equal(t, 0.0, r.players.DamageOverlayAlpha())

	p.Health = 40
	p.IsInvincible = true
	assert.InDelta(t, 153.0, r.players.DamageOverlayAlpha(), 1e-9)
}
