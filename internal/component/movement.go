// internal/component/movement.go
package component

import "deep-dive-dash/pkg/geom"

// Body — прямоугольник сущности в мировых координатах
type Body struct {
	Rect geom.Rect
}

// Velocity — компонент скорости
type Velocity struct {
	geom.Vec
}
