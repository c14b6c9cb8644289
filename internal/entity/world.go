// internal/entity/world.go
package entity

import (
	"go-chicken-run/internal/component"
	"go-chicken-run/internal/types"
)

// World owns every live entity of a run. Enemies keep insertion order, which
// is the order collision checks walk them in.
type World struct {
	NextID  types.EntityID
	Player  *component.Player
	Enemies []*component.Enemy
	Pickup  *component.Pickup
}

func NewWorld(player *component.Player) *World {
	return &World{
		NextID:  1,
		Player:  player,
		Enemies: make([]*component.Enemy, 0, 32),
		Pickup:  &component.Pickup{},
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy assigns an id when the enemy has none and appends it to the live set.
func (w *World) AddEnemy(e *component.Enemy) types.EntityID {
	if e.ID == 0 {
		e.ID = w.NewEntity()
	}
	w.Enemies = append(w.Enemies, e)
	return e.ID
}

// RemoveEnemy drops the enemy with the given id, keeping the order of the rest.
func (w *World) RemoveEnemy(id types.EntityID) bool {
	for i, e := range w.Enemies {
		if e.ID == id {
			w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveEnemiesIf filters the live set in place and returns how many were removed.
func (w *World) RemoveEnemiesIf(drop func(*component.Enemy) bool) int {
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		if !drop(e) {
			kept = append(kept, e)
		}
	}
	removed := len(w.Enemies) - len(kept)
	for i := len(kept); i < len(w.Enemies); i++ {
		w.Enemies[i] = nil
	}
	w.Enemies = kept
	return removed
}

func (w *World) EnemyCount() int {
	return len(w.Enemies)
}
