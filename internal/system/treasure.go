// internal/system/treasure.go
package system

import (
	"deep-dive-dash/internal/entity"
	"deep-dive-dash/internal/event"
)

// TreasureSystem проигрывает анимацию открытия сундуков.
type TreasureSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
}

func NewTreasureSystem(world *entity.World, eventDispatcher *event.Dispatcher) *TreasureSystem {
	return &TreasureSystem{world: world, eventDispatcher: eventDispatcher}
}

// Update продвигает анимацию. На последнем кадре сокровище становится
// собранным и остаётся на этом кадре.
func (s *TreasureSystem) Update() {
	for _, id := range entity.SortedIDs(s.world.Treasures) {
		t := s.world.Treasures[id]
		if !t.Animating {
			continue
		}
		frames := float64(max(t.Frames, 1))
		t.Index += t.Speed
		if t.Index >= frames {
			t.Index = frames - 1
			t.Animating = false
			t.Collected = true
			s.eventDispatcher.Emit(event.TreasureCollected, t.Type)
		}
	}
}

// TriggerOverlapping запускает анимацию у несобранных сокровищ под игроком.
func (s *TreasureSystem) TriggerOverlapping() {
	body := s.world.Player.Rect
	for _, id := range entity.SortedIDs(s.world.Treasures) {
		t := s.world.Treasures[id]
		if t.Collected || t.Animating || !body.Overlaps(t.Rect) {
			continue
		}
		t.Animating = true
		t.Index = 0
		s.eventDispatcher.Emit(event.TreasureTriggered, t.Type)
	}
}
