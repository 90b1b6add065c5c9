// internal/component/bubble.go
package component

// Bubble — декоративный пузырь над игроком
type Bubble struct {
	Body
	Size   int
	Alpha  float64
	SpeedY float64 // подъём за тик
	Fade   float64 // потеря прозрачности за тик
	Drift  float64 // горизонтальный снос за тик
}
