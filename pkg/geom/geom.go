// pkg/geom/geom.go
package geom

import "math"

// Vec — двумерный вектор в мировых координатах
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }
func (v Vec) DistanceTo(o Vec) float64 { return v.Sub(o).Len() }

// Normalize возвращает единичный вектор того же направления.
// Нулевой вектор остаётся нулевым.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l == 0 {
		return Vec{}
	}
	return Vec{v.X / l, v.Y / l}
}

// Rect — прямоугольник, выровненный по осям. X, Y — левый верхний угол.
type Rect struct {
	X, Y, W, H float64
}

// RectFromCenter строит прямоугольник заданного размера с центром в c.
func RectFromCenter(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Top() float64 { return r.Y }
func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

func (r Rect) TopLeft() Vec {
	return Vec{r.X, r.Y}
}

// Moved возвращает копию прямоугольника с левым верхним углом в (x, y).
func (r Rect) Moved(x, y float64) Rect {
	r.X, r.Y = x, y
	return r
}

// Centered возвращает копию прямоугольника с центром в c.
func (r Rect) Centered(c Vec) Rect {
	return RectFromCenter(c, r.W, r.H)
}

// Overlaps сообщает, пересекаются ли прямоугольники.
// Касание по границе пересечением не считается.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Clamp ограничивает v диапазоном [lo, hi]. При hi < lo побеждает lo.
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
