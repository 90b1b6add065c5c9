// internal/ui/fonts.go
package ui

import (
	"fmt"
	"image/color"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const (
	titleFontSize   = 40
	regularFontSize = 22
	smallFontSize   = 16
)

// Fonts — начертания интерфейса
type Fonts struct {
	Title   font.Face
	Regular font.Face
	Small   font.Face
}

// LoadFonts загружает TTF-шрифт. Если файла нет или он битый,
// все начертания заменяются на basicfont.
func LoadFonts(logger *zap.Logger, path string) *Fonts {
	fonts, err := loadTTF(path)
	if err != nil {
		logger.Warn("falling back to basic font", zap.String("path", path), zap.Error(err))
		f := basicfont.Face7x13
		return &Fonts{Title: f, Regular: f, Small: f}
	}
	return fonts
}

func loadTTF(path string) (*Fonts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var fonts Fonts
	for _, f := range []struct {
		dst  *font.Face
		size float64
	}{
		{&fonts.Title, titleFontSize},
		{&fonts.Regular, regularFontSize},
		{&fonts.Small, smallFontSize},
	} {
		if *f.dst, err = face(f.size); err != nil {
			return nil, fmt.Errorf("create font face: %w", err)
		}
	}
	return &fonts, nil
}

// DrawText рисует строку так, что (x, y) — левый верхний угол текста.
func DrawText(screen *ebiten.Image, s string, face font.Face, x, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(screen, s, face, x-b.Min.X, y-b.Min.Y, clr)
}

// DrawCentered рисует строку с центром в (cx, cy).
func DrawCentered(screen *ebiten.Image, s string, face font.Face, cx, cy int, clr color.Color) {
	b := text.BoundString(face, s)
	DrawText(screen, s, face, cx-b.Dx()/2, cy-b.Dy()/2, clr)
}
