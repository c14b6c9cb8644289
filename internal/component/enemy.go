// internal/component/enemy.go
package component

import "go-chicken-run/internal/types"

// Enemy is one live hostile actor.
type Enemy struct {
	ID types.EntityID
	Actor
	Damage    int
	Archetype string // definition id from enemies.json
	Sprite    string
	Behavior  Behavior
}
