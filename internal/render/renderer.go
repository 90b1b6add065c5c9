// internal/render/renderer.go
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"deep-dive-dash/internal/app"
	"deep-dive-dash/internal/assets"
	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/entity"
	"deep-dive-dash/internal/system"
	"deep-dive-dash/pkg/geom"
	paint "deep-dive-dash/pkg/render"
)

const (
	parallaxFactor = 0.2
	floatAmplitude = 10.0
	floatSpeed     = 5.0 // радиан в секунду
)

// subtractAlpha вычитает маску из слоя: так фонарь «прорезает» темноту.
var subtractAlpha = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOne,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationReverseSubtract,
	BlendOperationAlpha:         ebiten.BlendOperationReverseSubtract,
}

// Renderer рисует уровень поверх кадров из библиотеки ассетов.
// Кэши пузырей и фонаря живут до Reset, который вызывается при перезагрузке уровня.
type Renderer struct {
	lib      *assets.Library
	textures map[image.Image]*ebiten.Image
	bubbles  map[int]*ebiten.Image // ключ — диаметр
	lights   map[int]*ebiten.Image // ключ — радиус
	darkness *ebiten.Image
}

func NewRenderer(lib *assets.Library) *Renderer {
	return &Renderer{
		lib:      lib,
		textures: make(map[image.Image]*ebiten.Image),
		bubbles:  make(map[int]*ebiten.Image),
		lights:   make(map[int]*ebiten.Image),
	}
}

// Reset очищает кэши, завязанные на уровень.
func (r *Renderer) Reset() {
	// Текстуры кадров не освобождаются явно: на иконки HUD держат ссылки.
	r.textures = make(map[image.Image]*ebiten.Image)
	for _, img := range r.bubbles {
		img.Deallocate()
	}
	r.bubbles = make(map[int]*ebiten.Image)
	for _, img := range r.lights {
		img.Deallocate()
	}
	r.lights = make(map[int]*ebiten.Image)
}

// Texture переводит кадр библиотеки в изображение ebiten, один раз на кадр.
func (r *Renderer) Texture(img image.Image) *ebiten.Image {
	if tex, ok := r.textures[img]; ok {
		return tex
	}
	tex := ebiten.NewImageFromImage(img)
	r.textures[img] = tex
	return tex
}

// frame выбирает кадр набора по индексу анимации.
func (r *Renderer) frame(key string, index int) *ebiten.Image {
	frames := r.lib.Frames(key)
	if index < 0 || index >= len(frames) {
		index = 0
	}
	return r.Texture(frames[index])
}

// DrawBackground рисует неподвижный фон и средний план с параллаксом.
func (r *Renderer) DrawBackground(screen *ebiten.Image, offset geom.Vec, mapW, mapH, elapsed float64) {
	sw, sh := screenSize(screen)
	screen.Fill(config.BackgroundColor)

	if bg, ok := r.lib.Image("background"); ok {
		r.drawStretched(screen, r.Texture(bg), 0, 0, sw, sh)
	}
	if mid, ok := r.lib.Image("midground"); ok {
		w := sw + math.Max(0, mapW-sw)*parallaxFactor
		h := sh + math.Max(0, mapH-sh)*parallaxFactor + floatAmplitude*2
		y := -offset.Y*parallaxFactor + math.Sin(elapsed*floatSpeed)*floatAmplitude
		r.drawStretched(screen, r.Texture(mid), -offset.X*parallaxFactor, y, w, h)
	}
}

// DrawMenuBackground прокручивает средний план по горизонтали, бесшовно.
func (r *Renderer) DrawMenuBackground(screen *ebiten.Image, scrollX float64) {
	sw, sh := screenSize(screen)
	screen.Fill(config.BackgroundColor)
	if bg, ok := r.lib.Image("background"); ok {
		r.drawStretched(screen, r.Texture(bg), 0, 0, sw, sh)
	}
	mid, ok := r.lib.Image("midground")
	if !ok {
		return
	}
	x := -math.Mod(scrollX, sw)
	r.drawStretched(screen, r.Texture(mid), x, 0, sw, sh)
	r.drawStretched(screen, r.Texture(mid), x+sw, 0, sw, sh)
}

// DrawWorld рисует уровень в порядке: тайлы, монеты, сокровища, подлодка,
// игрок, враги, пузыри, затемнение.
func (r *Renderer) DrawWorld(screen *ebiten.Image, g *app.Game) {
	offset := g.CameraOffset
	w := g.World

	r.drawTiles(screen, g, offset)

	for _, id := range entity.SortedIDs(w.Coins) {
		c := w.Coins[id]
		r.drawAt(screen, r.frame(component.CoinSprite(c.Type), c.Anim.Index), c.Rect, offset, false, 1)
	}
	for _, id := range entity.SortedIDs(w.Treasures) {
		t := w.Treasures[id]
		r.drawAt(screen, r.frame(component.TreasureSprite(t.Type), t.Frame()), t.Rect, offset, false, 1)
	}
	if w.Submarine != nil {
		r.drawAt(screen, r.frame(component.SubmarineSprite, 0), w.Submarine.Rect, offset, false, 1)
	}

	p := w.Player
	r.drawAt(screen, r.frame(component.PlayerSprite(p.Anim.Set), p.Anim.Index), p.Rect, offset, p.FacingLeft, 1)

	for _, id := range entity.SortedIDs(w.Enemies) {
		e := w.Enemies[id]
		r.drawAt(screen, r.frame(component.EnemySprite(e.Sprite, e.Anim.Set), e.Anim.Index), e.Rect, offset, e.FacingLeft(), 1)
	}
	for _, b := range w.Bubbles {
		r.drawAt(screen, r.bubble(b.Size), b.Rect, offset, false, float32(b.Alpha/config.BubbleStartAlpha))
	}

	r.drawDarkness(screen, p, g.Grid.PixelHeight(), offset)
}

// drawTiles рисует только видимые клетки.
func (r *Renderer) drawTiles(screen *ebiten.Image, g *app.Game, offset geom.Vec) {
	sw, sh := screenSize(screen)
	ts := g.Grid.TileSize
	firstCol := max(0, int(offset.X)/ts)
	firstRow := max(0, int(offset.Y)/ts)
	lastCol := min(g.Grid.Cols()-1, int(offset.X+sw)/ts)
	lastRow := min(g.Grid.Rows()-1, int(offset.Y+sh)/ts)

	for row := firstRow; row <= lastRow; row++ {
		for col := firstCol; col <= lastCol; col++ {
			id := g.Grid.Data[row][col]
			if id < 0 {
				continue
			}
			x := float64(col*ts) - offset.X
			y := float64(row*ts) - offset.Y
			if tile, ok := r.lib.Tile(id); ok {
				op := &ebiten.DrawImageOptions{}
				op.GeoM.Translate(x, y)
				screen.DrawImage(r.Texture(tile), op)
				continue
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(ts), float32(ts), config.TileColor, false)
		}
	}
}

// drawDarkness затемняет экран по глубине и вырезает круг фонаря вокруг игрока.
func (r *Renderer) drawDarkness(screen *ebiten.Image, p *component.Player, mapH float64, offset geom.Vec) {
	alpha := system.DepthDarkness(p.Rect.Center().Y, mapH)
	if alpha == 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if r.darkness == nil || r.darkness.Bounds().Dx() != w || r.darkness.Bounds().Dy() != h {
		if r.darkness != nil {
			r.darkness.Deallocate()
		}
		r.darkness = ebiten.NewImage(w, h)
	}
	r.darkness.Fill(color.RGBA{0, 0, 0, alpha})

	radius := int(p.LightRadius())
	light := r.light(radius)
	c := p.Rect.Center().Sub(offset)
	op := &ebiten.DrawImageOptions{Blend: subtractAlpha}
	op.GeoM.Translate(c.X-float64(radius), c.Y-float64(radius))
	r.darkness.DrawImage(light, op)

	screen.DrawImage(r.darkness, nil)
}

func (r *Renderer) bubble(size int) *ebiten.Image {
	if img, ok := r.bubbles[size]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(paint.BubbleImage(size))
	r.bubbles[size] = img
	return img
}

func (r *Renderer) light(radius int) *ebiten.Image {
	if img, ok := r.lights[radius]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(paint.FlashlightGradient(radius))
	r.lights[radius] = img
	return img
}

// drawAt рисует изображение в прямоугольнике мира, при необходимости отражая по горизонтали.
func (r *Renderer) drawAt(screen, img *ebiten.Image, rect geom.Rect, offset geom.Vec, flip bool, alpha float32) {
	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(rect.X-offset.X, rect.Y-offset.Y)
	if alpha < 1 {
		op.ColorScale.ScaleAlpha(alpha)
	}
	screen.DrawImage(img, op)
}

func (r *Renderer) drawStretched(screen, img *ebiten.Image, x, y, w, h float64) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

func screenSize(screen *ebiten.Image) (float64, float64) {
	b := screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}
