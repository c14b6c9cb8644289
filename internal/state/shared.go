// internal/state/shared.go
package state

import (
	"log/slog"

	"go-chicken-run/internal/assets"
	"go-chicken-run/internal/config"
	"go-chicken-run/internal/input"
	"go-chicken-run/internal/interfaces"
	"go-chicken-run/internal/stats"
	"go-chicken-run/internal/ui"
	"go-chicken-run/internal/utils"
	"go-chicken-run/pkg/render"
)

// Shared is the set of services every screen works with.
type Shared struct {
	Settings config.Settings
	Session  interfaces.Session
	Keymap   input.Keymap
	Clock    utils.Clock
	Sprites  *assets.SpriteManager
	Tiles    *render.TileRenderer
	HUD      *ui.HUD
	Fonts    *ui.Fonts
	Stats    *stats.Store
	Poll     func() input.Intent
	Logger   *slog.Logger
}

func (s *Shared) intent() input.Intent {
	if s.Poll != nil {
		return s.Poll()
	}
	return s.Keymap.Poll()
}

// resetToMenu rebuilds the session and returns to the menu screen.
func (s *Shared) resetToMenu(sm *StateMachine) {
	if err := s.Session.Reset(); err != nil {
		s.Logger.Error("failed to reset game", "error", err)
		sm.Quit()
		return
	}
	if s.Tiles != nil {
		s.Tiles.SetTileMap(s.Session.Map())
	}
	sm.SetState(NewMenuState(sm, s))
}
