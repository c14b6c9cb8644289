// internal/defs/types.go
package defs

// BehaviorType selects how an enemy steers between spawn and despawn.
type BehaviorType string

const (
	BehaviorStraight BehaviorType = "straight" // keeps its spawn direction
	BehaviorErratic  BehaviorType = "erratic"  // turns randomly every few seconds
)

// SpawnEntry is one weighted choice in a spawn table.
type SpawnEntry struct {
	EnemyID string `json:"enemy_id"`
	Weight  int    `json:"weight"`
}
