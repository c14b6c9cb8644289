// internal/component/actor.go
package component

import (
	"math"

	"go-chicken-run/internal/config"
	"go-chicken-run/pkg/utils"
)

// MoveOutcome reports what TryMove did with a candidate position.
type MoveOutcome struct {
	Applied     bool
	Position    Vec2 // committed position, or the candidate clamped to the screen
	OutOfBounds bool
}

// Actor is the shared state of anything that moves and animates on screen.
type Actor struct {
	Position    Vec2
	Size        Size
	Direction   Direction
	Frame       float64
	FrameCounts [len(Directions)]int
	Speed       float64
}

// NewActor builds an actor with config.SpriteFrames frames per direction.
func NewActor(pos Vec2, size Size, dir Direction, speed float64) Actor {
	a := Actor{
		Position:  pos,
		Size:      size,
		Direction: dir,
		Speed:     speed,
	}
	for i := range a.FrameCounts {
		a.FrameCounts[i] = config.SpriteFrames
	}
	return a
}

// SetDirection changes facing and restarts the animation when it differs.
func (a *Actor) SetDirection(d Direction) {
	if d != a.Direction {
		a.Direction = d
		a.Frame = 0
	}
}

// AdvanceAnimation moves the fractional frame forward, wrapping per direction.
func (a *Actor) AdvanceAnimation(speed float64) {
	n := a.frameCount()
	if n <= 0 {
		a.Frame = 0
		return
	}
	a.Frame = utils.FloorMod(a.Frame+speed, float64(n))
}

// SpriteFrame is the integer frame index to draw.
func (a *Actor) SpriteFrame() int {
	return int(math.Floor(a.Frame))
}

func (a *Actor) frameCount() int {
	if a.Direction < 0 || int(a.Direction) >= len(a.FrameCounts) {
		return 0
	}
	return a.FrameCounts[a.Direction]
}

// TryMove commits Position+delta when the result stays inside
// [0, W-w] x [0, H-h]. Otherwise the position is left untouched and the
// outcome carries the candidate clamped to that box.
func (a *Actor) TryMove(delta Vec2, screen Size) MoveOutcome {
	candidate := a.Position.Add(delta)
	maxX, maxY := screen.W-a.Size.W, screen.H-a.Size.H

	if candidate.X >= 0 && candidate.X <= maxX && candidate.Y >= 0 && candidate.Y <= maxY {
		a.Position = candidate
		return MoveOutcome{Applied: true, Position: candidate}
	}

	return MoveOutcome{
		Position:    Vec2{X: utils.Clamp(candidate.X, 0, maxX), Y: utils.Clamp(candidate.Y, 0, maxY)},
		OutOfBounds: true,
	}
}

// Rect is the actor's bounding rectangle.
func (a *Actor) Rect() Rect {
	return Rect{X: a.Position.X, Y: a.Position.Y, W: a.Size.W, H: a.Size.H}
}
