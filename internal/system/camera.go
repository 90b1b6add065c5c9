// internal/system/camera.go
package system

import "deep-dive-dash/pkg/geom"

// CameraOffset держит игрока в центре экрана, но не показывает ничего за краем карты.
// Если карта меньше экрана, смещение по этой оси равно 0.
func CameraOffset(focus geom.Vec, mapW, mapH, screenW, screenH float64) geom.Vec {
	return geom.Vec{
		X: geom.Clamp(focus.X-screenW/2, 0, mapW-screenW),
		Y: geom.Clamp(focus.Y-screenH/2, 0, mapH-screenH),
	}
}

// DepthDarkness — непрозрачность затемнения на глубине y: 0 у поверхности, 255 на дне.
func DepthDarkness(y, mapH float64) uint8 {
	if mapH <= 0 {
		return 0
	}
	return uint8(geom.Clamp(y/mapH, 0, 1) * 255)
}
