// internal/state/game_over_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"deep-dive-dash/internal/ui"
)

// GameOverState — итог забега поверх застывшего уровня
type GameOverState struct {
	sm    *StateMachine
	ctx   *Context
	frame *GameState
	view  *ui.GameOverView
}

func NewGameOverState(sm *StateMachine, ctx *Context, frame *GameState) *GameOverState {
	return &GameOverState{
		sm:    sm,
		ctx:   ctx,
		frame: frame,
		view:  ui.NewGameOverView(ctx.Fonts, ctx.Width, ctx.Height),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) error {
	switch s.view.Update() {
	case ui.GameOverRetry:
		// Кадры перечитываются до пересборки сессии: размеры спрайтов берутся из библиотеки
		if err := s.ctx.Assets.Reload(s.ctx.Manifest); err != nil {
			s.ctx.Logger.Warn("asset reload failed, keeping loaded frames", zap.Error(err))
		}
		if err := s.ctx.Game.Retry(); err != nil {
			return err
		}
		s.ctx.Renderer.Reset()
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	case ui.GameOverExit:
		return ErrQuit
	}
	return nil
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.frame.Draw(screen)
	g := s.ctx.Game
	s.view.Draw(screen, g.Win(), g.RunCoins(), g.CollectedTreasures())
}

func (s *GameOverState) Exit() {}
