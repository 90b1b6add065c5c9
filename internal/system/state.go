// internal/system/state.go
package system

import (
	"go.uber.org/zap"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/event"
)

// StateSystem хранит фазу игрового цикла и сообщает о переходах.
type StateSystem struct {
	logger          *zap.Logger
	phase           component.Phase
	win             bool
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(logger *zap.Logger, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		logger:          logger,
		phase:           component.MenuPhase,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Current() component.Phase {
	return s.phase
}

// Win — итог завершённого забега
func (s *StateSystem) Win() bool {
	return s.win
}

func (s *StateSystem) SwitchToRunning() {
	s.win = false
	s.switchTo(component.RunningPhase)
}

func (s *StateSystem) SwitchToGameOver(win bool) {
	s.win = win
	s.switchTo(component.GameOverPhase)
}

func (s *StateSystem) switchTo(next component.Phase) {
	prev := s.phase
	s.phase = next
	s.logger.Info("phase changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", next),
		zap.Bool("win", s.win),
	)
	s.eventDispatcher.Emit(event.PhaseChanged, event.PhaseChangedData{From: prev.String(), To: next.String(), Win: s.win})
}
