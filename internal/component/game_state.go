// internal/component/game_state.go
package component

// GamePhase is the top-level state of a run.
type GamePhase int

const (
	MenuPhase GamePhase = iota
	PlayingPhase
	PausedPhase
	GameOverPhase
	EndedPhase
)

func (p GamePhase) String() string {
	switch p {
	case MenuPhase:
		return "menu"
	case PlayingPhase:
		return "playing"
	case PausedPhase:
		return "paused"
	case GameOverPhase:
		return "game_over"
	case EndedPhase:
		return "ended"
	}
	return "unknown"
}
