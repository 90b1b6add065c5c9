// internal/system/movement.go
package system

import (
	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/entity"
	"deep-dive-dash/pkg/geom"
	"deep-dive-dash/pkg/tilemap"
)

// MovementSystem ведёт патрулирование врагов: движение по горизонтали
// с разворотом при столкновении со стеной или краем карты.
type MovementSystem struct {
	world *entity.World
	grid  *tilemap.TileMap
}

func NewMovementSystem(world *entity.World, grid *tilemap.TileMap) *MovementSystem {
	return &MovementSystem{world: world, grid: grid}
}

func (s *MovementSystem) Update(deltaTime float64) {
	var playerCenter geom.Vec
	hasPlayer := s.world.Player != nil
	if hasPlayer {
		playerCenter = s.world.Player.Rect.Center()
	}

	for _, id := range entity.SortedIDs(s.world.Enemies) {
		enemy := s.world.Enemies[id]
		center := enemy.Rect.Center()

		// Рядом с игроком враг переходит в атаку
		if hasPlayer {
			if center.DistanceTo(playerCenter) < config.EnemyAttackDistance {
				enemy.Anim.Switch(component.EnemyAttack)
			} else {
				enemy.Anim.Switch(component.EnemyWalk)
			}
		}
		enemy.Anim.Step()

		next := enemy.Rect.Centered(geom.Vec{
			X: center.X + enemy.Direction*enemy.Speed*deltaTime,
			Y: center.Y,
		})
		if s.blocked(next) {
			enemy.Direction = -enemy.Direction
			continue
		}
		enemy.Rect = next
	}
}

func (s *MovementSystem) blocked(r geom.Rect) bool {
	if r.Left() < 0 || r.Right() > s.grid.PixelWidth() {
		return true
	}
	return s.grid.CheckCollision(r)
}
