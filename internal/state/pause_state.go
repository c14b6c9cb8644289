// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-chicken-run/internal/config"
	"go-chicken-run/internal/ui"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the run under a dimmed overlay until P is pressed again.
type PauseState struct {
	sm            *StateMachine
	shared        *Shared
	previousState State
}

func NewPauseState(sm *StateMachine, shared *Shared, prevState State) *PauseState {
	return &PauseState{sm: sm, shared: shared, previousState: prevState}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	in := s.shared.intent()
	switch {
	case in.Quit:
		s.shared.Session.End()
		s.shared.resetToMenu(s.sm)
	case in.Pause:
		s.shared.Session.TogglePause()
		s.sm.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.PauseDimColor, false)
	if s.shared.Fonts != nil {
		ui.DrawCentered(screen, "Paused", s.shared.Fonts.Title, float64(h)/2-25, config.TextLightColor)
	}
}

func (s *PauseState) Exit() {}
