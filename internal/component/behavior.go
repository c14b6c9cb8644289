// internal/component/behavior.go
package component

import (
	"time"

	"go-chicken-run/internal/utils"
)

// Behavior is the per-archetype hook run after an enemy moves each tick.
type Behavior interface {
	Tick(e *Enemy, now time.Time)
}

// Straight keeps the spawn direction forever.
type Straight struct{}

func (Straight) Tick(*Enemy, time.Time) {}

// Erratic turns to a random cardinal direction every WaitTime.
type Erratic struct {
	WaitTime   time.Duration
	LastChange time.Time
	rng        *utils.PRNGService
}

// NewErratic draws the wait time once, as a whole number of seconds in
// [waitMin, waitMax].
func NewErratic(rng *utils.PRNGService, waitMin, waitMax int, now time.Time) *Erratic {
	return &Erratic{
		WaitTime:   time.Duration(rng.IntRange(waitMin, waitMax)) * time.Second,
		LastChange: now,
		rng:        rng,
	}
}

func (b *Erratic) Tick(e *Enemy, now time.Time) {
	if now.Sub(b.LastChange) < b.WaitTime {
		return
	}
	e.Direction = Directions[b.rng.Intn(len(Directions))]
	e.Frame = 0
	b.LastChange = now
}
