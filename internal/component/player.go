// internal/component/player.go
package component

import "deep-dive-dash/internal/utils"

// Наборы кадров игрока
const (
	PlayerIdle     = "idle"
	PlayerSwimming = "swimming"
)

// SkillStatus — снимок состояния навыка для игрока и HUD
type SkillStatus struct {
	Active     bool
	Remaining  float64 // сколько ещё действует эффект
	Cooldown   float64 // сколько ждать до следующей активации
	OnCooldown bool
}

// Player хранит состояние ныряльщика.
type Player struct {
	Body
	Velocity
	Anim       Animation
	FacingLeft bool

	Health    float64
	HealthMax Stat
	Oxygen    float64
	OxygenMax Stat
	SwimSpeed Stat // пикселей за тик

	MagnetRadius         Stat
	MagnetActive         bool
	OxygenMultiplier     float64 // множитель расхода кислорода
	FlashlightRadius     float64 // базовый радиус фонаря
	FlashlightMultiplier float64

	Invincible      bool
	InvincibleTimer float64

	HasShield           bool
	ShieldCharges       int
	ShieldMaxCharges    int
	ShieldRechargeTimer float64

	Skills map[string]SkillStatus // ключ — ID навыка
}

// HealthPercent — здоровье в процентах, всегда в [0, 100]
func (p *Player) HealthPercent() float64 {
	return utils.Percent(p.Health, p.HealthMax.Value)
}

// OxygenPercent — кислород в процентах, всегда в [0, 100]
func (p *Player) OxygenPercent() float64 {
	return utils.Percent(p.Oxygen, p.OxygenMax.Value)
}

// LightRadius — текущий радиус фонаря с учётом навыков
func (p *Player) LightRadius() float64 {
	return p.FlashlightRadius * p.FlashlightMultiplier
}
