package render

import (
	"image/color"
	"testing"
)

func TestFlashlightGradient(t *testing.T) {
	g := FlashlightGradient(50)
	if b := g.Bounds(); b.Dx() != 100 || b.Dy() != 100 {
		t.Fatalf("expected 100x100 mask, got %v", b)
	}
	center := g.AlphaAt(50, 50).A
	if center < 250 {
		t.Errorf("expected near-opaque center, got %d", center)
	}
	if corner := g.AlphaAt(0, 0).A; corner != 0 {
		t.Errorf("expected transparent corner, got %d", corner)
	}
	prev := uint8(255)
	for x := 50; x < 100; x++ {
		a := g.AlphaAt(x, 50).A
		if a > prev {
			t.Fatalf("alpha must not grow towards the edge: x=%d %d > %d", x, a, prev)
		}
		prev = a
	}
	if small := FlashlightGradient(0); small.Bounds().Dx() != 2 {
		t.Errorf("expected radius clamped to 1, got %v", small.Bounds())
	}
}

func TestBubbleImage(t *testing.T) {
	img := BubbleImage(16)
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("expected transparent corner, got alpha %d", a)
	}
	c := img.RGBAAt(12, 12)
	if c.A != 180 || c.B == 0 {
		t.Errorf("expected bubble fill at the lower right, got %+v", c)
	}
	h := img.RGBAAt(5, 5)
	if h.A <= 180 || h.R <= c.R {
		t.Errorf("expected brighter highlight, got %+v vs %+v", h, c)
	}
}

func TestDarkenColor(t *testing.T) {
	got := DarkenColor(color.RGBA{200, 100, 50, 255})
	if got != (color.RGBA{100, 50, 25, 255}) {
		t.Errorf("unexpected darkened color %+v", got)
	}
}
