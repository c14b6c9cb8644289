package component

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-chicken-run/internal/config"
	"go-chicken-run/internal/utils"
)

var screen = Size{W: 1000, H: 900}

func TestDirectionVector(t *testing.T) {
	assert.Equal(t, Vec2{Y: -1}, Up.Vector())
	assert.Equal(t, Vec2{Y: 1}, Down.Vector())
	assert.Equal(t, Vec2{X: -1}, Left.Vector())
	assert.Equal(t, Vec2{X: 1}, Right.Vector())
	assert.Equal(t, "left", Left.String())
}

func TestRectIntersectsIsStrict(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.False(t, a.Intersects(Rect{X: 10, Y: 0, W: 10, H: 10}), "shared edge")
	assert.False(t, a.Intersects(Rect{X: 0, Y: 10, W: 10, H: 10}), "shared edge")
	assert.False(t, a.Intersects(Rect{X: 3, Y: 3, W: 0, H: 4}), "empty")
	assert.True(t, ScreenRect(screen).Intersects(Rect{X: 999, Y: 0, W: 25, H: 25}))
	assert.False(t, ScreenRect(screen).Intersects(Rect{X: 1000, Y: 0, W: 25, H: 25}))
}

func TestSetDirectionResetsFrame(t *testing.T) {
	a := NewActor(Vec2{}, Size{W: 25, H: 25}, Down, 10)
	a.Frame = 2.5
	a.SetDirection(Down)
	assert.Equal(t, 2.5, a.Frame)
	a.SetDirection(Left)
	assert.Equal(t, Left, a.Direction)
	assert.Equal(t, 0.0, a.Frame)
}

func TestAdvanceAnimationWraps(t *testing.T) {
	a := NewActor(Vec2{}, Size{W: 25, H: 25}, Down, 10)
	for i := 0; i < 39; i++ {
		a.AdvanceAnimation(0.1)
	}
	assert.InDelta(t, 3.9, a.Frame, 1e-9)
	assert.Equal(t, 3, a.SpriteFrame())

	a.AdvanceAnimation(0.2)
	assert.InDelta(t, 0.1, a.Frame, 1e-9)
	assert.Equal(t, 0, a.SpriteFrame())

	a.FrameCounts[Down] = 0
	a.AdvanceAnimation(0.1)
	assert.Equal(t, 0.0, a.Frame)
}

func TestTryMove(t *testing.T) {
	a := NewActor(Vec2{X: 100, Y: 100}, Size{W: 25, H: 25}, Up, 5)

	out := a.TryMove(Vec2{Y: -5}, screen)
	require.True(t, out.Applied)
	assert.False(t, out.OutOfBounds)
	assert.Equal(t, Vec2{X: 100, Y: 95}, a.Position)

	a.Position = Vec2{X: 0, Y: 0}
	out = a.TryMove(Vec2{X: -10}, screen)
	assert.False(t, out.Applied)
	assert.True(t, out.OutOfBounds)
	assert.Equal(t, Vec2{X: 0, Y: 0}, out.Position)
	assert.Equal(t, Vec2{X: 0, Y: 0}, a.Position)

	a.Position = Vec2{X: 970, Y: 400}
	out = a.TryMove(Vec2{X: 50}, screen)
	assert.True(t, out.OutOfBounds)
	assert.Equal(t, Vec2{X: 975, Y: 400}, out.Position)
	assert.Equal(t, Vec2{X: 970, Y: 400}, a.Position, "nothing committed")

	// the far edge itself is in bounds
	a.Position = Vec2{X: 965, Y: 875}
	out = a.TryMove(Vec2{X: 10}, screen)
	assert.True(t, out.Applied)
	assert.Equal(t, Rect{X: 975, Y: 875, W: 25, H: 25}, a.Rect())
}

func TestNewPlayer(t *testing.T) {
	now := time.Unix(1000, 0)
	p := NewPlayer(config.Default().Player, Size{W: 25, H: 25}, now)
	assert.Equal(t, "Poulet", p.Name)
	assert.Equal(t, 100, p.Health)
	assert.Equal(t, 100, p.Stamina)
	assert.Equal(t, 10.0, p.Speed)
	assert.Equal(t, Down, p.Direction)
	assert.Equal(t, Vec2{}, p.Position)
	assert.Equal(t, now, p.DamageTimestamp)
	assert.False(t, p.OnFire)
}

func TestErraticChangesDirectionAfterWait(t *testing.T) {
	start := time.Unix(0, 0)
	rng := utils.NewPRNGService(3)
	b := NewErratic(rng, 1, 5, start)
	require.GreaterOrEqual(t, b.WaitTime, time.Second)
	require.LessOrEqual(t, b.WaitTime, 5*time.Second)
	assert.Zero(t, b.WaitTime%time.Second)

	e := &Enemy{Actor: NewActor(Vec2{}, Size{W: 25, H: 25}, Right, 2), Behavior: b}
	e.Frame = 1.5

	b.Tick(e, start.Add(b.WaitTime-time.Millisecond))
	assert.Equal(t, Right, e.Direction)
	assert.Equal(t, 1.5, e.Frame)

	changedAt := start.Add(b.WaitTime)
	b.Tick(e, changedAt)
	assert.Equal(t, 0.0, e.Frame)
	assert.Equal(t, changedAt, b.LastChange)
	assert.Contains(t, Directions[:], e.Direction)
}

func TestStraightDoesNothing(t *testing.T) {
	e := &Enemy{Actor: NewActor(Vec2{}, Size{W: 25, H: 25}, Left, 2)}
	e.Frame = 2
	Straight{}.Tick(e, time.Now())
	assert.Equal(t, Left, e.Direction)
	assert.Equal(t, 2.0, e.Frame)
}

func TestGamePhaseString(t *testing.T) {
	assert.Equal(t, "game_over", GameOverPhase.String())
	assert.Equal(t, "menu", MenuPhase.String())
}
