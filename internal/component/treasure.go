// internal/component/treasure.go
package component

// Treasure — сокровище уровня. Проигрывает анимацию один раз и остаётся собранным.
type Treasure struct {
	Body
	Type      string // "treasure1".."treasure3"
	Frames    int
	Index     float64 // дробный индекс кадра
	Speed     float64
	Animating bool
	Collected bool
}

// Frame — целый индекс текущего кадра
func (t *Treasure) Frame() int {
	return int(t.Index)
}
