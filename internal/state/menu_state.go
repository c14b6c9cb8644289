// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-chicken-run/internal/config"
	"go-chicken-run/internal/ui"
)

// MenuState shows lifetime stats and waits for Enter (play) or Esc (quit).
type MenuState struct {
	sm        *StateMachine
	shared    *Shared
	statsText string
}

func NewMenuState(sm *StateMachine, shared *Shared) *MenuState {
	return &MenuState{sm: sm, shared: shared}
}

func (m *MenuState) Enter() {
	m.statsText = ""
	if m.shared.Stats == nil {
		return
	}
	text, err := m.shared.Stats.Formatted()
	if err != nil {
		m.shared.Logger.Warn("failed to read stats", "error", err)
		return
	}
	m.statsText = text
}

func (m *MenuState) Update(deltaTime float64) {
	in := m.shared.intent()
	switch {
	case in.Quit:
		m.sm.Quit()
	case in.Confirm:
		m.shared.Session.Start()
		m.sm.SetState(NewPlayState(m.sm, m.shared))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	if m.shared.Tiles != nil {
		m.shared.Tiles.Draw(screen)
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), config.PauseDimColor, false)

	if m.shared.Fonts == nil {
		return
	}
	fonts := m.shared.Fonts
	ui.DrawCentered(screen, "Chicken Run", fonts.Title, float64(h)/3, config.TextLightColor)
	ui.DrawCentered(screen, "Enter to play, Esc to quit", fonts.Body, float64(h)-80, config.TextLightColor)
	if m.statsText != "" {
		ui.DrawLines(screen, m.statsText, fonts.Body, 20, 50, 40, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
