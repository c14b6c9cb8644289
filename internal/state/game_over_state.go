// internal/state/game_over_state.go
package state

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-chicken-run/internal/app"
	"go-chicken-run/internal/config"
	"go-chicken-run/internal/ui"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the final frame and play time, then returns to the
// menu after config.GameOverScreenTime or on Enter.
type GameOverState struct {
	sm        *StateMachine
	shared    *Shared
	enteredAt time.Time
	final     app.Snapshot
	summary   app.Summary
}

func NewGameOverState(sm *StateMachine, shared *Shared) *GameOverState {
	return &GameOverState{sm: sm, shared: shared}
}

func (s *GameOverState) Enter() {
	s.enteredAt = s.shared.Clock.Now()
	s.final = s.shared.Session.Snapshot()
	s.summary = s.shared.Session.Summary()
	s.shared.Logger.Info("showing game over", "seconds", s.summary.Seconds, "kills", s.summary.Kills)
}

func (s *GameOverState) Update(deltaTime float64) {
	in := s.shared.intent()
	if in.Quit {
		s.sm.Quit()
		return
	}
	if in.Confirm || s.shared.Clock.Now().Sub(s.enteredAt) >= config.GameOverScreenTime {
		s.shared.resetToMenu(s.sm)
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	drawWorld(screen, s.shared, s.final)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.PauseDimColor, false)
	if s.shared.Fonts == nil {
		return
	}
	ui.DrawCentered(screen, "Game Over", s.shared.Fonts.Title, float64(h)/2-60, config.TextLightColor)
	ui.DrawCentered(screen, fmt.Sprintf("Time: %d seconds", s.summary.Seconds), s.shared.Fonts.Body, float64(h)/2+10, config.TextLightColor)
}

func (s *GameOverState) Exit() {}
