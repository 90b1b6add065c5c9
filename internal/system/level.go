// internal/system/level.go
package system

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/defs"
	"deep-dive-dash/internal/entity"
	"deep-dive-dash/internal/utils"
	"deep-dive-dash/pkg/geom"
	"deep-dive-dash/pkg/tilemap"
)

var ErrPlacementExhausted = errors.New("no free space left for placement")

// TreasureTypes — по одному сокровищу каждого типа на уровень
var TreasureTypes = []string{"treasure1", "treasure2", "treasure3"}

// LevelGenerator расставляет монеты, сокровища и подлодку.
type LevelGenerator struct {
	logger  *zap.Logger
	world   *entity.World
	grid    *tilemap.TileMap
	sprites component.SpriteSource
	rng     *utils.PRNGService
}

func NewLevelGenerator(logger *zap.Logger, world *entity.World, grid *tilemap.TileMap,
	sprites component.SpriteSource, rng *utils.PRNGService) *LevelGenerator {
	return &LevelGenerator{
		logger:  logger,
		world:   world,
		grid:    grid,
		sprites: sprites,
		rng:     rng,
	}
}

// Generate строит уровень. Нехватка места для монет не ошибка,
// а без всех сокровищ уровень не пройти, поэтому это ошибка.
func (g *LevelGenerator) Generate(coinTypes []defs.CoinDefinition, coinCount int) error {
	g.PlaceCoins(coinTypes, coinCount)
	if err := g.PlaceTreasures(); err != nil {
		return err
	}
	g.PlaceSubmarine()
	return nil
}

// PlaceCoins ставит до count монет, делая не больше count*10 попыток на все.
func (g *LevelGenerator) PlaceCoins(coinTypes []defs.CoinDefinition, count int) int {
	w, h := int(g.grid.PixelWidth()), int(g.grid.PixelHeight())
	pad := int(config.CoinPadding)
	maxAttempts := count * config.CoinAttemptsPerCoin

	placed := 0
	for attempts := 0; placed < count && attempts < maxAttempts; attempts++ {
		x := g.rng.IntRange(pad, w-pad)
		y := g.rng.IntRange(pad, h-pad)
		candidate := geom.Rect{X: float64(x), Y: float64(y), W: config.CoinPlacementSize, H: config.CoinPlacementSize}
		if g.grid.CheckCollision(candidate) {
			continue
		}

		kind := g.rng.ChooseCoin(coinTypes)
		sprite := g.sprites.Sprite(component.CoinSprite(kind.ID))
		id := g.world.NewEntity()
		g.world.Coins[id] = &component.Coin{
			Body:  component.Body{Rect: geom.RectFromCenter(geom.Vec{X: float64(x), Y: float64(y)}, sprite.Width, sprite.Height)},
			Type:  kind.ID,
			Value: kind.Value,
			Anim:  component.NewAnimation(kind.ID, config.CoinAnimationSpeed, map[string]int{kind.ID: sprite.Frames}),
		}
		placed++
	}

	if placed < count {
		g.logger.Warn("not all coins placed",
			zap.Int("placed", placed),
			zap.Int("requested", count),
			zap.Int("attempts", maxAttempts),
		)
	}
	return placed
}

// PlaceTreasures ставит по сокровищу каждого типа, до TreasureAttempts попыток на каждое.
func (g *LevelGenerator) PlaceTreasures() error {
	w, h := int(g.grid.PixelWidth()), int(g.grid.PixelHeight())
	pad := int(config.TreasurePadding)

	for _, kind := range TreasureTypes {
		sprite := g.sprites.Sprite(component.TreasureSprite(kind))
		placed := false
		for attempt := 0; attempt < config.TreasureAttempts; attempt++ {
			x := g.rng.IntRange(pad, w-pad-int(config.TreasurePlacementW))
			y := g.rng.IntRange(pad, h-pad-int(config.TreasurePlacementH))
			body := geom.Rect{X: float64(x), Y: float64(y), W: sprite.Width, H: sprite.Height}
			if g.grid.CheckCollision(body) {
				continue
			}

			id := g.world.NewEntity()
			g.world.Treasures[id] = &component.Treasure{
				Body:   component.Body{Rect: body},
				Type:   kind,
				Frames: sprite.Frames,
				Speed:  config.TreasureAnimationSpeed,
			}
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("place %s after %d attempts: %w", kind, config.TreasureAttempts, ErrPlacementExhausted)
		}
	}
	return nil
}

// PlaceSubmarine ставит подлодку в правый нижний угол карты.
func (g *LevelGenerator) PlaceSubmarine() {
	sprite := g.sprites.Sprite(component.SubmarineSprite)
	g.world.Submarine = &component.Submarine{
		Body: component.Body{Rect: geom.Rect{
			X: g.grid.PixelWidth() - sprite.Width,
			Y: g.grid.PixelHeight() - sprite.Height,
			W: sprite.Width,
			H: sprite.Height,
		}},
	}
}
