// internal/component/pickup.go
package component

import "time"

// Pickup is the single fire power-up slot.
type Pickup struct {
	Rect         Rect
	Spawned      bool
	EffectActive bool
	EffectExpiry time.Time
}
