package input

import "testing"

func TestAxis(t *testing.T) {
	cases := []struct {
		state  State
		dx, dy float64
	}{
		{Keys(), 0, 0},
		{Keys(Left), -1, 0},
		{Keys(Right, Down), 1, 1},
		{Keys(Left, Right, Up), 0, -1},
	}
	for _, c := range cases {
		dx, dy := c.state.Axis()
		if dx != c.dx || dy != c.dy {
			t.Errorf("state %08b: expected (%v,%v), got (%v,%v)", c.state, c.dx, c.dy, dx, dy)
		}
	}
	if !Keys(Activate).Pressed(Activate) || Keys(Up).Pressed(Down) {
		t.Error("unexpected Pressed result")
	}
}
