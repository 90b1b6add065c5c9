// internal/assets/library.go
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/config"
)

// Кадры врагов и сокровищ пронумерованы, остальные наборы берутся по имени файла.
const (
	enemyFirstFrame    = 1
	enemyLastFrame     = 10
	treasureFirstFrame = 0
	treasureLastFrame  = 9
)

// Manifest перечисляет наборы, которые зависят от каталога.
type Manifest struct {
	Enemies   []string // каталоги enemies/<sprite>
	Coins     []string // типы монет
	Treasures []string // treasure1..treasure3
}

// Library загружает, масштабирует и кэширует кадры спрайтов.
// Размеры кадров уже итоговые, в мировых пикселях.
type Library struct {
	logger      *zap.Logger
	root        string
	frames      map[string][]image.Image
	images      map[string]image.Image
	tiles       []image.Image
	placeholder image.Image
}

// NewLibrary создаёт пустую библиотеку с корнем root.
func NewLibrary(logger *zap.Logger, root string) *Library {
	return &Library{
		logger:      logger,
		root:        root,
		frames:      make(map[string][]image.Image),
		images:      make(map[string]image.Image),
		placeholder: image.NewRGBA(image.Rect(0, 0, config.PlaceholderSize, config.PlaceholderSize)),
	}
}

// Load читает все наборы. Отсутствующие кадры пропускаются,
// пустой набор заменяется прозрачной заглушкой.
func (l *Library) Load(m Manifest) error {
	if info, err := os.Stat(l.root); err != nil || !info.IsDir() {
		return fmt.Errorf("asset directory %s not found", l.root)
	}

	l.frames[component.PlayerSprite(component.PlayerIdle)] = l.loadSorted("characters/idle")
	l.frames[component.PlayerSprite(component.PlayerSwimming)] = l.loadSorted("characters/default_swimming")

	for _, sprite := range m.Enemies {
		for _, set := range []string{component.EnemyWalk, component.EnemyAttack} {
			dir := filepath.Join("enemies", sprite, set)
			frames := l.loadNumbered(dir, enemyFirstFrame, enemyLastFrame)
			l.frames[component.EnemySprite(sprite, set)] = scaleAll(frames, config.EnemyScale)
		}
	}

	for _, coinType := range m.Coins {
		l.frames[component.CoinSprite(coinType)] = l.loadSorted(filepath.Join("coins", coinType))
	}

	for _, t := range m.Treasures {
		frames := l.loadNumbered(filepath.Join("treasure", t), treasureFirstFrame, treasureLastFrame)
		for i, f := range frames {
			frames[i] = resize(f, int(config.TreasureWidth), int(config.TreasureHeight))
		}
		l.frames[component.TreasureSprite(t)] = frames
	}

	if sub, ok := l.loadFile("submarine.png"); ok {
		b := sub.Bounds()
		l.frames[component.SubmarineSprite] = []image.Image{
			resize(sub, int(float64(b.Dx())*config.SubmarineScale), int(float64(b.Dy())*config.SubmarineScale)),
		}
	}

	for name, path := range map[string]string{
		"background":    "backgrounds/background.png",
		"midground":     "backgrounds/midground.png",
		"icon_coin":     "ui/icon_coin.png",
		"icon_treasure": "ui/icon_treasure.png",
	} {
		if img, ok := l.loadFile(path); ok {
			l.images[name] = img
		}
	}

	if tileset, ok := l.loadFile("tiles/tileset.png"); ok {
		l.tiles = sliceTiles(tileset, config.TileSize)
	} else {
		l.logger.Warn("tileset missing, tiles will be drawn as plain blocks")
	}

	l.logger.Info("assets loaded",
		zap.String("root", l.root),
		zap.Int("sets", len(l.frames)),
		zap.Int("tiles", len(l.tiles)),
	)
	return nil
}

// Reload сбрасывает кэш и загружает наборы заново.
// Если загрузка не удалась, остаются прежние кадры.
func (l *Library) Reload(m Manifest) error {
	frames, images, tiles := l.frames, l.images, l.tiles
	l.frames = make(map[string][]image.Image)
	l.images = make(map[string]image.Image)
	l.tiles = nil
	if err := l.Load(m); err != nil {
		l.frames, l.images, l.tiles = frames, images, tiles
		return err
	}
	return nil
}

// Frames возвращает кадры набора. Для неизвестного набора это одна заглушка.
func (l *Library) Frames(key string) []image.Image {
	if frames := l.frames[key]; len(frames) > 0 {
		return frames
	}
	return []image.Image{l.placeholder}
}

// Sprite реализует component.SpriteSource.
func (l *Library) Sprite(key string) component.SpriteInfo {
	frames := l.Frames(key)
	b := frames[0].Bounds()
	return component.SpriteInfo{Frames: len(frames), Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Image возвращает необязательное изображение: фон или иконку.
func (l *Library) Image(name string) (image.Image, bool) {
	img, ok := l.images[name]
	return img, ok
}

// Tile возвращает изображение тайла по ID из карты.
func (l *Library) Tile(id int) (image.Image, bool) {
	if id < 0 || id >= len(l.tiles) {
		return nil, false
	}
	return l.tiles[id], true
}

func (l *Library) TileCount() int {
	return len(l.tiles)
}

// loadSorted читает все .png каталога в порядке имён.
func (l *Library) loadSorted(dir string) []image.Image {
	entries, err := os.ReadDir(filepath.Join(l.root, dir))
	if err != nil {
		l.logger.Warn("frame directory missing, using placeholder", zap.String("dir", dir))
		return l.orPlaceholder(nil)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var frames []image.Image
	for _, name := range names {
		if img, ok := l.loadFile(filepath.Join(dir, name)); ok {
			frames = append(frames, img)
		}
	}
	if len(frames) == 0 {
		l.logger.Warn("no frames found, using placeholder", zap.String("dir", dir))
	}
	return l.orPlaceholder(frames)
}

// loadNumbered читает кадры first.png..last.png, пропуская отсутствующие.
func (l *Library) loadNumbered(dir string, first, last int) []image.Image {
	var frames []image.Image
	for i := first; i <= last; i++ {
		if img, ok := l.loadFile(filepath.Join(dir, strconv.Itoa(i)+".png")); ok {
			frames = append(frames, img)
		}
	}
	if len(frames) == 0 {
		l.logger.Warn("no frames found, using placeholder", zap.String("dir", dir))
	}
	return l.orPlaceholder(frames)
}

// loadFile декодирует один PNG. Отсутствующий или битый файл пропускается.
func (l *Library) loadFile(rel string) (image.Image, bool) {
	f, err := os.Open(filepath.Join(l.root, rel))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("failed to open image", zap.String("path", rel), zap.Error(err))
		}
		return nil, false
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		l.logger.Warn("failed to decode image, skipping", zap.String("path", rel), zap.Error(err))
		return nil, false
	}
	return img, true
}

func (l *Library) orPlaceholder(frames []image.Image) []image.Image {
	if len(frames) == 0 {
		return []image.Image{l.placeholder}
	}
	return frames
}

func scaleAll(frames []image.Image, k float64) []image.Image {
	out := make([]image.Image, len(frames))
	for i, f := range frames {
		b := f.Bounds()
		out[i] = resize(f, int(float64(b.Dx())*k), int(float64(b.Dy())*k))
	}
	return out
}

// resize сглаженно масштабирует изображение до w x h.
func resize(src image.Image, w, h int) image.Image {
	if w <= 0 || h <= 0 {
		w, h = 1, 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// sliceTiles режет тайлсет на квадраты построчно, слева направо.
// Неполные квадраты по краям отбрасываются.
func sliceTiles(src image.Image, size int) []image.Image {
	b := src.Bounds()
	var tiles []image.Image
	for y := b.Min.Y; y+size <= b.Max.Y; y += size {
		for x := b.Min.X; x+size <= b.Max.X; x += size {
			tile := image.NewRGBA(image.Rect(0, 0, size, size))
			draw.Draw(tile, tile.Bounds(), src, image.Pt(x, y), draw.Src)
			tiles = append(tiles, tile)
		}
	}
	return tiles
}
