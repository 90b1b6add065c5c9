// internal/component/game_state.go
package component

// Phase — состояние игрового цикла
type Phase int

const (
	MenuPhase Phase = iota
	RunningPhase
	GameOverPhase
)

func (p Phase) String() string {
	switch p {
	case MenuPhase:
		return "menu"
	case RunningPhase:
		return "running"
	case GameOverPhase:
		return "gameover"
	}
	return "unknown"
}
