// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-chicken-run/internal/component"
)

var _ State = (*PlayState)(nil)

// PlayState feeds input to the session and ticks it once per frame.
type PlayState struct {
	sm     *StateMachine
	shared *Shared
}

func NewPlayState(sm *StateMachine, shared *Shared) *PlayState {
	return &PlayState{sm: sm, shared: shared}
}

func (s *PlayState) Enter() {}

func (s *PlayState) Update(deltaTime float64) {
	session := s.shared.Session
	in := s.shared.intent()

	if in.Quit {
		session.End()
		s.shared.resetToMenu(s.sm)
		return
	}
	if in.Pause {
		session.TogglePause()
		s.sm.SetState(NewPauseState(s.sm, s.shared, s))
		return
	}
	if in.HasDirection {
		session.SetDirection(in.Direction)
	}
	if in.Dash {
		session.Dash()
	}

	session.Tick()

	if session.Phase() == component.GameOverPhase {
		s.sm.SetState(NewGameOverState(s.sm, s.shared))
	}
}

func (s *PlayState) Draw(screen *ebiten.Image) {
	drawWorld(screen, s.shared, s.shared.Session.Snapshot())
}

func (s *PlayState) Exit() {}
