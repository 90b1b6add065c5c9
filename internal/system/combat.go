// internal/system/combat.go
package system

import (
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/entity"
)

// CombatSystem проверяет касания игрока с врагами.
type CombatSystem struct {
	world  *entity.World
	player *PlayerSystem
}

func NewCombatSystem(world *entity.World, player *PlayerSystem) *CombatSystem {
	return &CombatSystem{world: world, player: player}
}

// Update наносит контактный урон. Возвращает true, если игрок погиб;
// остальные враги в этом случае уже не проверяются.
func (s *CombatSystem) Update() bool {
	p := s.world.Player
	for _, id := range entity.SortedIDs(s.world.Enemies) {
		enemy := s.world.Enemies[id]
		if p.Invincible || !p.Rect.Overlaps(enemy.Rect) {
			continue
		}
		damage := enemy.Damage
		if damage <= 0 {
			damage = config.ContactDamage
		}
		if s.player.TakeDamage(damage) {
			return true
		}
	}
	return false
}
