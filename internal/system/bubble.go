// internal/system/bubble.go
package system

import (
	"math"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/entity"
	"deep-dive-dash/internal/utils"
	"deep-dive-dash/pkg/geom"
)

var bubbleDrifts = [...]float64{-0.2, 0, 0.2}

// BubbleSystem выпускает пузыри над игроком и растворяет их.
// Пузыри на игру не влияют.
type BubbleSystem struct {
	world *entity.World
	rng   *utils.PRNGService
	timer float64
}

func NewBubbleSystem(world *entity.World, rng *utils.PRNGService) *BubbleSystem {
	return &BubbleSystem{world: world, rng: rng}
}

func (s *BubbleSystem) Update(deltaTime float64) {
	s.timer += deltaTime
	if s.timer > config.BubbleInterval {
		top := s.world.Player.Rect
		s.emit(top.Center().X, top.Top(), s.rng.IntRange(1, 2))
		s.timer = 0
	}

	alive := s.world.Bubbles[:0]
	for _, b := range s.world.Bubbles {
		b.Rect = b.Rect.Moved(b.Rect.X+b.Drift, b.Rect.Y-b.SpeedY)
		b.Alpha = math.Max(0, b.Alpha-b.Fade)
		if b.Alpha > 0 {
			alive = append(alive, b)
		}
	}
	clear(s.world.Bubbles[len(alive):])
	s.world.Bubbles = alive
}

func (s *BubbleSystem) emit(x, y float64, count int) {
	for i := 0; i < count; i++ {
		size := s.rng.IntRange(12, 20)
		center := geom.Vec{
			X: x + float64(s.rng.IntRange(-10, 10)),
			Y: y + float64(s.rng.IntRange(-5, 5)),
		}
		s.world.Bubbles = append(s.world.Bubbles, &component.Bubble{
			Body:   component.Body{Rect: geom.RectFromCenter(center, float64(size), float64(size))},
			Size:   size,
			Alpha:  config.BubbleStartAlpha,
			SpeedY: s.rng.Uniform(0.4, 0.8),
			Fade:   s.rng.Uniform(1.5, 2.5),
			Drift:  bubbleDrifts[s.rng.Intn(len(bubbleDrifts))],
		})
	}
	// Слишком много пузырей: убираем самые старые
	if len(s.world.Bubbles) > config.BubbleMaxAlive {
		s.world.Bubbles = append(s.world.Bubbles[:0], s.world.Bubbles[config.BubbleTrimCount:]...)
	}
}
