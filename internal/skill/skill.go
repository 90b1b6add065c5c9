// internal/skill/skill.go
package skill

import (
	"math"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/defs"
	"deep-dive-dash/internal/utils"
)

// Skill — экземпляр навыка в каталоге сессии.
// Purchased — постоянная разблокировка, Active — окно действия активного навыка.
type Skill struct {
	Def           defs.SkillDefinition
	Purchased     bool
	Active        bool
	Remaining     float64 // до конца текущей активации
	CooldownTimer float64 // до следующей возможной активации
}

func (s *Skill) ID() string { return s.Def.ID }
func (s *Skill) Name() string { return s.Def.Name }
func (s *Skill) Price() int { return s.Def.Price }
func (s *Skill) Passive() bool { return s.Def.Passive }

// Effective сообщает, действует ли эффект навыка прямо сейчас.
func (s *Skill) Effective() bool {
	return s.Purchased && (s.Def.Passive || s.Active)
}

// Unlock отмечает навык купленным. Пассивный навык сразу применяется к игроку,
// доля здоровья и кислорода от максимума при этом сохраняется.
func (s *Skill) Unlock(p *component.Player) {
	if s.Purchased {
		return
	}
	s.Purchased = true
	if s.Def.Passive && p != nil {
		healthShare := Share(p.Health, p.HealthMax.Value)
		oxygenShare := Share(p.Oxygen, p.OxygenMax.Value)
		s.Apply(p)
		p.Health = math.Max(0, math.Floor(p.HealthMax.Value*healthShare))
		p.Oxygen = math.Max(0, math.Floor(p.OxygenMax.Value*oxygenShare))
	}
}

// Share — доля значения от максимума; при нулевом максимуме считаем полной.
func Share(value, maxValue float64) float64 {
	if maxValue <= 0 {
		return 1
	}
	return value / maxValue
}

// Activate запускает активный навык. Возвращает false, если навык не куплен,
// пассивный, уже действует или ещё на перезарядке.
func (s *Skill) Activate(p *component.Player) bool {
	if !s.Purchased || s.Def.Passive || s.Active || s.CooldownTimer > 0 {
		return false
	}
	s.Active = true
	s.Apply(p)
	s.Remaining = s.Def.Duration
	s.CooldownTimer = s.Def.Cooldown
	return true
}

// Update продвигает таймеры навыка на dt секунд.
func (s *Skill) Update(p *component.Player, dt float64) {
	if s.Active && s.Remaining > 0 {
		s.Remaining -= dt
		if s.Remaining <= 0 {
			s.Remaining = 0
			s.Active = false
			s.Deactivate(p)
		}
	}
	s.CooldownTimer = utils.Approach(s.CooldownTimer, dt)
}

// Status — снимок для игрока и HUD
func (s *Skill) Status() component.SkillStatus {
	return component.SkillStatus{
		Active:     s.Active,
		Remaining:  s.Remaining,
		Cooldown:   s.CooldownTimer,
		OnCooldown: s.CooldownTimer > 0,
	}
}

// Apply изменяет характеристики игрока. Значение всегда считается от базы,
// так что повторный вызов ничего не накапливает.
func (s *Skill) Apply(p *component.Player) {
	k := s.Def.Multiplier
	switch s.Def.Effect {
	case defs.EffectHealthMax:
		p.HealthMax.Scale(k)
		p.HealthMax.Value = math.Floor(p.HealthMax.Value)
		p.Health = math.Min(p.Health, p.HealthMax.Value)
	case defs.EffectOxygenMax:
		p.OxygenMax.Scale(k)
		p.OxygenMax.Value = math.Floor(p.OxygenMax.Value)
		p.Oxygen = math.Min(p.Oxygen, p.OxygenMax.Value)
	case defs.EffectSwimSpeed:
		p.SwimSpeed.Scale(k)
	case defs.EffectOxygenConsumption:
		p.OxygenMultiplier = k
	case defs.EffectMagnet:
		p.MagnetRadius.Scale(k)
		p.MagnetActive = true
	case defs.EffectFlashlight:
		p.FlashlightMultiplier = k
	case defs.EffectShield:
		p.HasShield = true
		p.ShieldMaxCharges = s.Def.Charges
		p.ShieldCharges = s.Def.Charges
		p.ShieldRechargeTimer = 0
	}
}

// Deactivate откатывает эффект к базовым значениям.
func (s *Skill) Deactivate(p *component.Player) {
	switch s.Def.Effect {
	case defs.EffectHealthMax:
		p.HealthMax.Restore()
		p.Health = math.Min(p.Health, p.HealthMax.Value)
	case defs.EffectOxygenMax:
		p.OxygenMax.Restore()
		p.Oxygen = math.Min(p.Oxygen, p.OxygenMax.Value)
	case defs.EffectSwimSpeed:
		p.SwimSpeed.Restore()
	case defs.EffectOxygenConsumption:
		p.OxygenMultiplier = 1
	case defs.EffectMagnet:
		p.MagnetRadius.Restore()
		p.MagnetActive = false
	case defs.EffectFlashlight:
		p.FlashlightMultiplier = 1
	case defs.EffectShield:
		p.HasShield = false
		p.ShieldCharges = 0
		p.ShieldMaxCharges = 0
		p.ShieldRechargeTimer = 0
	}
}
