// internal/system/spawner.go
package system

import (
	"math"
	"strconv"

	"go.uber.org/zap"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/defs"
	"deep-dive-dash/internal/entity"
	"deep-dive-dash/internal/utils"
	"deep-dive-dash/pkg/geom"
	"deep-dive-dash/pkg/tilemap"
)

// SpawnSystem расставляет врагов при загрузке уровня выборкой с отбраковкой.
type SpawnSystem struct {
	logger  *zap.Logger
	world   *entity.World
	grid    *tilemap.TileMap
	sprites component.SpriteSource
	rng     *utils.PRNGService
}

func NewSpawnSystem(logger *zap.Logger, world *entity.World, grid *tilemap.TileMap,
	sprites component.SpriteSource, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{
		logger:  logger,
		world:   world,
		grid:    grid,
		sprites: sprites,
		rng:     rng,
	}
}

// SpawnEnemies пытается поставить по одному врагу каждого типа.
// Тип, для которого не нашлось места, пропускается. Возвращает число
// поставленных врагов.
func (s *SpawnSystem) SpawnEnemies(archetypes []defs.EnemyDefinition, playerStart geom.Vec) int {
	var usedY []int
	spawned := 0

	for _, def := range archetypes {
		walk := s.sprites.Sprite(component.EnemySprite(def.Sprite, component.EnemyWalk))
		attack := s.sprites.Sprite(component.EnemySprite(def.Sprite, component.EnemyAttack))

		placed := false
		for attempt := 0; attempt < config.EnemySpawnAttempts; attempt++ {
			center := s.randomEnemyPosition()
			body := geom.RectFromCenter(center, walk.Width, walk.Height)
			y := int(center.Y)

			if !farFromAll(y, usedY) ||
				center.DistanceTo(playerStart) <= config.EnemyMinPlayerDistance ||
				s.grid.CheckCollision(body) {
				continue
			}

			id := s.world.NewEntity()
			s.world.Enemies[id] = &component.Enemy{
				Body:      component.Body{Rect: body},
				DefID:     def.ID,
				Sprite:    def.Sprite,
				Direction: s.rng.Sign(),
				Speed:     def.Speed,
				Damage:    def.Damage,
				Anim: component.NewAnimation(component.EnemyWalk, config.EnemyAnimationSpeed, map[string]int{
					component.EnemyWalk:   walk.Frames,
					component.EnemyAttack: attack.Frames,
				}),
			}
			usedY = append(usedY, y)
			spawned++
			placed = true
			break
		}

		if !placed {
			s.logger.Warn("enemy failed to spawn",
				zap.Int("enemy_id", def.ID),
				zap.Int("attempts", config.EnemySpawnAttempts),
			)
		}
	}
	return spawned
}

func (s *SpawnSystem) randomEnemyPosition() geom.Vec {
	margin := config.EnemySpawnMarginTiles * s.grid.TileSize
	w, h := int(s.grid.PixelWidth()), int(s.grid.PixelHeight())
	return geom.Vec{
		X: float64(s.rng.IntRange(margin, w-margin)),
		Y: float64(s.rng.IntRange(margin, h-margin)),
	}
}

func farFromAll(y int, used []int) bool {
	for _, other := range used {
		if math.Abs(float64(y-other)) <= config.EnemyMinYSeparation {
			return false
		}
	}
	return true
}

// DefaultArchetypes — запасной набор врагов 1..EnemyCount, если каталог пуст.
func DefaultArchetypes() []defs.EnemyDefinition {
	out := make([]defs.EnemyDefinition, 0, config.EnemyCount)
	for i := 1; i <= config.EnemyCount; i++ {
		out = append(out, defs.EnemyDefinition{
			ID:     i,
			Sprite: strconv.Itoa(i),
			Speed:  config.EnemySpeed,
			Damage: config.ContactDamage,
		})
	}
	return out
}
