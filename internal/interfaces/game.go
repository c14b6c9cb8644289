// internal/interfaces/game.go
package interfaces

import (
	"go-chicken-run/internal/app"
	"go-chicken-run/internal/component"
	"go-chicken-run/pkg/tilemap"
)

// Session is what the screens drive. *app.Game implements it.
type Session interface {
	Start()
	Tick()
	SetDirection(d component.Direction)
	Dash() bool
	TogglePause()
	End()
	Reset() error
	Phase() component.GamePhase
	Snapshot() app.Snapshot
	Summary() app.Summary
	Map() *tilemap.TileMap
}

var _ Session = (*app.Game)(nil)
