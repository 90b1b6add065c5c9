// pkg/render/images.go
package render

import (
	"image"
	"image/color"
	"math"
)

var (
	bubbleFill      = color.NRGBA{173, 216, 230, 180}
	bubbleHighlight = color.NRGBA{255, 255, 255, 100}
)

// BubbleImage рисует пузырь диаметром size с бликом в левой верхней трети.
func BubbleImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size / 2)
	fillCircle(img, r, r, r, bubbleFill)
	hr := math.Max(2, float64(size/6))
	fillCircle(img, float64(size/3), float64(size/3), hr, bubbleHighlight)
	return img
}

// FlashlightGradient строит маску фонаря диаметром 2*radius.
// Альфа 255 в центре и спадает к краю как 1-(d/r)^2.5; вне круга 0.
func FlashlightGradient(radius int) *image.Alpha {
	if radius < 1 {
		radius = 1
	}
	img := image.NewAlpha(image.Rect(0, 0, radius*2, radius*2))
	r := float64(radius)
	for y := 0; y < radius*2; y++ {
		for x := 0; x < radius*2; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r)
			if d >= r {
				continue
			}
			a := 255 * (1 - math.Pow(d/r, 2.5))
			img.SetAlpha(x, y, color.Alpha{A: uint8(math.Round(a))})
		}
	}
	return img
}

// fillCircle закрашивает круг поверх изображения с учётом альфы.
func fillCircle(img *image.RGBA, cx, cy, r float64, c color.NRGBA) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy) > r {
				continue
			}
			img.Set(x, y, over(img.RGBAAt(x, y), c))
		}
	}
}

// over накладывает c на dst по правилу source-over. dst хранит премультиплицированные каналы.
func over(dst color.RGBA, c color.NRGBA) color.RGBA {
	a := float64(c.A) / 255
	mix := func(s, d uint8) uint8 {
		return uint8(math.Round(float64(s)*a + float64(d)*(1-a)))
	}
	return color.RGBA{R: mix(c.R, dst.R), G: mix(c.G, dst.G), B: mix(c.B, dst.B), A: mix(255, dst.A)}
}
