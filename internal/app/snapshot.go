// internal/app/snapshot.go
package app

import (
	"go-chicken-run/internal/component"
	"go-chicken-run/internal/types"
)

// PlayerView is the renderer's read-only copy of the player.
type PlayerView struct {
	Position     component.Vec2
	Size         component.Size
	Direction    component.Direction
	Frame        int
	Health       int
	MaxHealth    int
	Stamina      int
	MaxStamina   int
	OnFire       bool
	OverlayAlpha float64
}

type EnemyView struct {
	ID        types.EntityID
	Archetype string
	Sprite    string
	Position  component.Vec2
	Size      component.Size
	Direction component.Direction
	Frame     int
}

type PickupView struct {
	Visible bool
	Rect    component.Rect
}

// Snapshot is everything a frame needs to draw, detached from live state.
type Snapshot struct {
	Phase   component.GamePhase
	Player  PlayerView
	Enemies []EnemyView
	Pickup  PickupView
	Seconds int
	Kills   int
}

// Summary describes a finished or running session.
type Summary struct {
	RunID   string
	Phase   component.GamePhase
	Seconds int
	Kills   int
	Health  int
}

func (g *Game) Snapshot() Snapshot {
	p := g.World.Player
	snap := Snapshot{
		Phase: g.phase,
		Player: PlayerView{
			Position:     p.Position,
			Size:         p.Size,
			Direction:    p.Direction,
			Frame:        p.SpriteFrame(),
			Health:       p.Health,
			MaxHealth:    p.MaxHealth,
			Stamina:      p.Stamina,
			MaxStamina:   p.MaxStamina,
			OnFire:       p.OnFire,
			OverlayAlpha: g.PlayerSystem.DamageOverlayAlpha(),
		},
		Enemies: make([]EnemyView, 0, len(g.World.Enemies)),
		Pickup: PickupView{
			Visible: g.World.Pickup.Spawned,
			Rect:    g.World.Pickup.Rect,
		},
		Seconds: g.ElapsedSeconds(),
		Kills:   p.KillCount,
	}
	for _, e := range g.World.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:        e.ID,
			Archetype: e.Archetype,
			Sprite:    e.Sprite,
			Position:  e.Position,
			Size:      e.Size,
			Direction: e.Direction,
			Frame:     e.SpriteFrame(),
		})
	}
	return snap
}

func (g *Game) Summary() Summary {
	return Summary{
		RunID:   g.RunID,
		Phase:   g.phase,
		Seconds: g.ElapsedSeconds(),
		Kills:   g.World.Player.KillCount,
		Health:  g.World.Player.Health,
	}
}
