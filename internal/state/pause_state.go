// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/ui"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает забег. Тик игры не вызывается, таймеры стоят.
type PauseState struct {
	stateMachine  *StateMachine
	previousState *GameState
}

func NewPauseState(sm *StateMachine, prevState *GameState) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.stateMachine.SetState(s.previousState)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previousState.Draw(screen)

	ctx := s.previousState.ctx
	vector.DrawFilledRect(screen, 0, 0, float32(ctx.Width), float32(ctx.Height), config.BarBackColor, false)
	ui.DrawCentered(screen, "PAUSED", ctx.Fonts.Title, ctx.Width/2, ctx.Height/2, config.TextLightColor)
}

func (s *PauseState) Exit() {}
