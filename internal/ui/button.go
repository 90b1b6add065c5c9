// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"deep-dive-dash/internal/config"
	"deep-dive-dash/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect       image.Rectangle
	Text       string
	TextColor  color.RGBA
	BgColor    color.RGBA
	HoverColor color.RGBA
	Disabled   bool
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, text string) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		TextColor:  config.TextLightColor,
		BgColor:    config.ButtonColor,
		HoverColor: config.ButtonHover,
	}
}

// Hovered сообщает, находится ли курсор над кнопкой.
func (b *Button) Hovered() bool {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(b.Rect)
}

// Clicked проверяет, был ли в этом кадре клик по кнопке.
func (b *Button) Clicked() bool {
	return !b.Disabled && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && b.Hovered()
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	bg := b.BgColor
	switch {
	case b.Disabled:
		bg = render.DarkenColor(bg)
	case b.Hovered():
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.TextLightColor, true)

	c := b.Rect.Min.Add(b.Rect.Max).Div(2)
	DrawCentered(screen, b.Text, face, c.X, c.Y, b.TextColor)
}

// centeredRect — прямоугольник w x h с центром в (cx, cy)
func centeredRect(cx, cy, w, h int) image.Rectangle {
	return image.Rect(cx-w/2, cy-h/2, cx+w/2, cy+h/2)
}
