package tilemap

import (
	"strings"
	"testing"

	"deep-dive-dash/pkg/geom"
)

// 4x3 карта, тайл 10px. Твёрдые клетки: (2,0) и весь нижний ряд.
const testCSV = `-1,-1,3,-1
-1,-1,-1,-1
0,1,2,5
`

func newTestMap(t *testing.T) *TileMap {
	t.Helper()
	m, err := Parse(strings.NewReader(testCSV), 10)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return m
}

func TestParseDimensions(t *testing.T) {
	m := newTestMap(t)
	if m.Cols() != 4 || m.Rows() != 3 {
		t.Fatalf("expected 4x3 grid, got %dx%d", m.Cols(), m.Rows())
	}
	if m.PixelWidth() != 40 || m.PixelHeight() != 30 {
		t.Errorf("expected 40x30 px, got %vx%v", m.PixelWidth(), m.PixelHeight())
	}
	if !m.IsCollidable(2, 0) || m.IsCollidable(0, 0) {
		t.Error("collidable matrix does not follow the id >= 0 rule")
	}
}

func TestParseRejectsRaggedRows(t *testing.T) {
	if _, err := Parse(strings.NewReader("1,2\n3\n"), 10); err == nil {
		t.Error("expected error for ragged rows")
	}
	if _, err := Parse(strings.NewReader(""), 10); err == nil {
		t.Error("expected error for empty map")
	}
	if _, err := Parse(strings.NewReader("1,x\n"), 10); err == nil {
		t.Error("expected error for non-integer id")
	}
}

func TestCheckCollisionFreeRegion(t *testing.T) {
	m := newTestMap(t)
	free := []geom.Rect{
		{X: 0, Y: 0, W: 20, H: 20},  // ровно две свободные колонки, два ряда
		{X: 30, Y: 0, W: 10, H: 20}, // правая колонка над полом
		{X: 12, Y: 11, W: 5, H: 5},  // внутри одной клетки
		{X: 0, Y: 10, W: 40, H: 10}, // средний ряд целиком
	}
	for _, r := range free {
		if m.CheckCollision(r) {
			t.Errorf("expected no collision for %+v", r)
		}
	}
}

func TestCheckCollisionOverlap(t *testing.T) {
	m := newTestMap(t)
	hits := []geom.Rect{
		{X: 15, Y: 0, W: 10, H: 5},  // задевает (2,0)
		{X: 0, Y: 15, W: 5, H: 10},  // спускается в пол
		{X: 29.5, Y: 5, W: 1, H: 1}, // дробная координата внутри (2,0)
		{X: 0, Y: 0, W: 40, H: 30},  // вся карта
	}
	for _, r := range hits {
		if !m.CheckCollision(r) {
			t.Errorf("expected collision for %+v", r)
		}
	}
}

func TestCheckCollisionEdgeExclusive(t *testing.T) {
	m := newTestMap(t)
	// Правый край ровно на границе твёрдой клетки — пересечения нет
	if m.CheckCollision(geom.Rect{X: 10, Y: 0, W: 10, H: 10}) {
		t.Error("rect ending at tile boundary must not touch the next tile")
	}
	// Нижний край ровно на полу
	if m.CheckCollision(geom.Rect{X: 0, Y: 10, W: 10, H: 10}) {
		t.Error("rect resting on the floor must not collide")
	}
}

func TestCheckCollisionOutOfBounds(t *testing.T) {
	m := newTestMap(t)
	outside := []geom.Rect{
		{X: -50, Y: -50, W: 20, H: 20},
		{X: 100, Y: 0, W: 10, H: 10},
		{X: -5, Y: 0, W: 10, H: 10}, // частично левее карты, свободная клетка
	}
	for _, r := range outside {
		if m.CheckCollision(r) {
			t.Errorf("expected out-of-bounds cells to be non-collidable for %+v", r)
		}
	}
	// Частично за нижним краем, но задевает пол
	if !m.CheckCollision(geom.Rect{X: 0, Y: 25, W: 10, H: 20}) {
		t.Error("expected collision with floor for rect hanging below the map")
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{7, 2, 3}, {-1, 64, -1}, {-64, 64, -1}, {-65, 64, -2}, {0, 64, 0},
	}
	for _, c := range cases {
		if got := floorDiv(c.a, c.b); got != c.want {
			t.Errorf("floorDiv(%d,%d): expected %d, got %d", c.a, c.b, c.want, got)
		}
	}
}
