// internal/input/input.go
package input

// Key — логическая клавиша управления ныряльщиком.
type Key uint8

const (
	Left Key = 1 << iota
	Right
	Up
	Down
	Activate // активный навык, только в кадре нажатия
)

// State — набор нажатых в этом кадре клавиш.
type State uint8

func Keys(keys ...Key) State {
	var s State
	for _, k := range keys {
		s |= State(k)
	}
	return s
}

func (s State) Pressed(k Key) bool {
	return s&State(k) != 0
}

// Axis возвращает направление по осям: -1, 0 или 1.
// Противоположные клавиши гасят друг друга.
func (s State) Axis() (dx, dy float64) {
	if s.Pressed(Left) {
		dx--
	}
	if s.Pressed(Right) {
		dx++
	}
	if s.Pressed(Up) {
		dy--
	}
	if s.Pressed(Down) {
		dy++
	}
	return dx, dy
}

// Provider отдаёт текущее состояние клавиш.
type Provider interface {
	Keys() State
}
