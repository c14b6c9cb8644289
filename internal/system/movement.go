// internal/system/movement.go
package system

import (
	"time"

	"go-chicken-run/internal/component"
	"go-chicken-run/internal/config"
	"go-chicken-run/internal/entity"
)

// MovementSystem advances every live enemy and despawns those that left the screen.
type MovementSystem struct {
	world  *entity.World
	screen component.Rect
}

func NewMovementSystem(world *entity.World, settings config.Settings) *MovementSystem {
	return &MovementSystem{
		world: world,
		screen: component.ScreenRect(component.Size{
			W: float64(settings.WindowWidth),
			H: float64(settings.WindowHeight),
		}),
	}
}

// Update moves, animates and runs the behaviour hook of each enemy, then
// prunes the off-screen ones. Returns how many were despawned.
func (s *MovementSystem) Update(now time.Time) int {
	for _, e := range s.world.Enemies {
		e.Position = e.Position.Add(e.Direction.Vector().Scale(e.Speed))
		e.AdvanceAnimation(config.AnimationSpeed)
		if e.Behavior != nil {
			e.Behavior.Tick(e, now)
		}
	}
	return s.world.RemoveEnemiesIf(func(e *component.Enemy) bool {
		return !s.screen.Intersects(e.Rect())
	})
}
