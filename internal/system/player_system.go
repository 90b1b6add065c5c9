// internal/system/player_system.go
package system

import (
	"math"

	"go.uber.org/zap"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/defs"
	"deep-dive-dash/internal/entity"
	"deep-dive-dash/internal/event"
	"deep-dive-dash/internal/input"
	"deep-dive-dash/internal/skill"
	"deep-dive-dash/pkg/geom"
	"deep-dive-dash/pkg/tilemap"
)

// NewPlayer создаёт ныряльщика в стартовой точке с базовыми характеристиками.
func NewPlayer(sprites component.SpriteSource) *component.Player {
	idle := sprites.Sprite(component.PlayerSprite(component.PlayerIdle))
	swimming := sprites.Sprite(component.PlayerSprite(component.PlayerSwimming))
	start := geom.Vec{X: config.PlayerStartX, Y: config.PlayerStartY}

	return &component.Player{
		Body: component.Body{Rect: geom.RectFromCenter(start, idle.Width, idle.Height)},
		Anim: component.NewAnimation(component.PlayerIdle, config.PlayerAnimationSpeed, map[string]int{
			component.PlayerIdle:     idle.Frames,
			component.PlayerSwimming: swimming.Frames,
		}),
		Health:               config.PlayerBaseHealth,
		HealthMax:            component.NewStat(config.PlayerBaseHealth),
		Oxygen:               config.PlayerBaseOxygen,
		OxygenMax:            component.NewStat(config.PlayerBaseOxygen),
		SwimSpeed:            component.NewStat(config.PlayerBaseSwimSpeed),
		MagnetRadius:         component.NewStat(config.PlayerMagnetRadius),
		OxygenMultiplier:     1,
		FlashlightRadius:     config.PlayerFlashlight,
		FlashlightMultiplier: 1,
		Skills:               make(map[string]component.SkillStatus),
	}
}

// PlayerSystem двигает игрока, ведёт его таймеры и применяет урон.
type PlayerSystem struct {
	logger          *zap.Logger
	world           *entity.World
	grid            *tilemap.TileMap
	catalogue       *skill.Catalogue
	eventDispatcher *event.Dispatcher
}

func NewPlayerSystem(logger *zap.Logger, world *entity.World, grid *tilemap.TileMap,
	catalogue *skill.Catalogue, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		logger:          logger,
		world:           world,
		grid:            grid,
		catalogue:       catalogue,
		eventDispatcher: eventDispatcher,
	}
}

// Update выполняет один тик игрока.
func (s *PlayerSystem) Update(keys input.State, deltaTime float64) {
	p := s.world.Player

	// 1. Таймеры навыков
	s.catalogue.Update(p, deltaTime)

	// 2. Скорость: по диагонали модуль тот же, что и по прямой
	dx, dy := keys.Axis()
	p.Velocity.Vec = geom.Vec{X: dx, Y: dy}.Normalize().Scale(p.SwimSpeed.Value)

	// 3. Перемещение в пределах карты. При столкновении ход отменяется целиком.
	maxX := s.grid.PixelWidth() - p.Rect.W
	maxY := s.grid.PixelHeight() - p.Rect.H
	candidate := p.Rect.Moved(
		geom.Clamp(p.Rect.X+p.Velocity.X, 0, maxX),
		geom.Clamp(p.Rect.Y+p.Velocity.Y, 0, maxY),
	)
	if !s.grid.CheckCollision(candidate) {
		p.Rect = candidate
	}

	// 4. Неуязвимость
	if p.Invincible {
		p.InvincibleTimer -= deltaTime
		if p.InvincibleTimer <= 0 {
			p.Invincible = false
			p.InvincibleTimer = 0
		}
	}

	// 5. Подзарядка щита
	if s.catalogue.Owns(defs.EffectShield) && p.ShieldCharges < p.ShieldMaxCharges && !p.Invincible {
		p.ShieldRechargeTimer += deltaTime
		if p.ShieldRechargeTimer >= config.ShieldRechargeTime {
			p.ShieldCharges++
			p.ShieldRechargeTimer = 0
			s.logger.Debug("shield recharged", zap.Int("charges", p.ShieldCharges))
		}
	}

	// 6. Производные множители пересчитываются заново каждый кадр
	p.MagnetActive = s.catalogue.Effective(defs.EffectMagnet)
	p.OxygenMultiplier = s.catalogue.Multiplier(defs.EffectOxygenConsumption)
	p.FlashlightMultiplier = s.catalogue.Multiplier(defs.EffectFlashlight)

	// 7. Анимация
	if p.Velocity.Len() > 0 {
		p.Anim.Switch(component.PlayerSwimming)
	} else {
		p.Anim.Switch(component.PlayerIdle)
	}
	p.Anim.Step()
	p.FacingLeft = p.Velocity.X < 0
}

// TakeDamage наносит урон игроку. Возвращает true, если здоровье кончилось.
func (s *PlayerSystem) TakeDamage(amount float64) bool {
	p := s.world.Player
	if p.Invincible {
		return false
	}

	if p.HasShield && p.ShieldCharges > 0 {
		p.ShieldCharges--
		p.Invincible = true
		p.InvincibleTimer = config.InvincibilityDuration
		s.logger.Debug("shield blocked damage", zap.Int("charges_left", p.ShieldCharges))
		s.eventDispatcher.Emit(event.ShieldBlocked, p.ShieldCharges)
		return false
	}

	p.Health = math.Max(0, p.Health-amount)
	p.Invincible = true
	p.InvincibleTimer = config.InvincibilityDuration

	dead := p.Health <= 0
	s.logger.Debug("player took damage", zap.Float64("amount", amount), zap.Float64("health", p.Health))
	s.eventDispatcher.Emit(event.PlayerDamaged, event.DamageData{Amount: amount, Health: p.Health, Dead: dead})
	return dead
}

// UpdateOxygen расходует кислород с учётом множителя игрока.
// Возвращает false, когда кислород закончился.
func (s *PlayerSystem) UpdateOxygen(decayAmount float64) bool {
	p := s.world.Player
	p.Oxygen = math.Max(0, p.Oxygen-decayAmount*p.OxygenMultiplier)
	return p.Oxygen > 0
}

// ApplyOwnedSkills применяет купленные пассивные навыки при старте сессии.
// Доля здоровья и кислорода от максимума сохраняется.
func (s *PlayerSystem) ApplyOwnedSkills() {
	p := s.world.Player
	healthShare := skill.Share(p.Health, p.HealthMax.Value)
	oxygenShare := skill.Share(p.Oxygen, p.OxygenMax.Value)

	for _, sk := range s.catalogue.All() {
		if sk.Purchased && sk.Passive() {
			sk.Apply(p)
		}
	}

	p.Health = math.Max(0, math.Floor(p.HealthMax.Value*healthShare))
	p.Oxygen = math.Max(0, math.Floor(p.OxygenMax.Value*oxygenShare))
}
