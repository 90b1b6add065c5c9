// internal/skill/catalogue.go
package skill

import (
	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/defs"
)

// Catalogue — единственный набор навыков сессии. Игрок и магазин работают
// с одними и теми же экземплярами, поэтому покупка видна всем в том же тике.
type Catalogue struct {
	skills []*Skill
	byID   map[string]*Skill
	byName map[string]*Skill
}

// NewCatalogue создаёт каталог в порядке определений.
func NewCatalogue(definitions []defs.SkillDefinition) *Catalogue {
	c := &Catalogue{
		skills: make([]*Skill, 0, len(definitions)),
		byID:   make(map[string]*Skill, len(definitions)),
		byName: make(map[string]*Skill, len(definitions)),
	}
	for _, def := range definitions {
		s := &Skill{Def: def}
		c.skills = append(c.skills, s)
		c.byID[def.ID] = s
		c.byName[def.Name] = s
	}
	return c
}

// All возвращает навыки в порядке каталога
func (c *Catalogue) All() []*Skill {
	return c.skills
}

func (c *Catalogue) Get(id string) (*Skill, bool) {
	s, ok := c.byID[id]
	return s, ok
}

// ByName ищет навык по отображаемому имени (так они хранятся в сохранении).
func (c *Catalogue) ByName(name string) (*Skill, bool) {
	s, ok := c.byName[name]
	return s, ok
}

// Owns сообщает, куплен ли хотя бы один навык с таким эффектом.
func (c *Catalogue) Owns(kind defs.EffectKind) bool {
	for _, s := range c.skills {
		if s.Purchased && s.Def.Effect == kind {
			return true
		}
	}
	return false
}

// Effective сообщает, действует ли сейчас эффект данного типа.
func (c *Catalogue) Effective(kind defs.EffectKind) bool {
	for _, s := range c.skills {
		if s.Def.Effect == kind && s.Effective() {
			return true
		}
	}
	return false
}

// Multiplier — произведение множителей действующих навыков данного типа, 1 если их нет.
func (c *Catalogue) Multiplier(kind defs.EffectKind) float64 {
	m := 1.0
	for _, s := range c.skills {
		if s.Def.Effect == kind && s.Effective() {
			m *= s.Def.Multiplier
		}
	}
	return m
}

// FirstActive возвращает первый купленный активный навык, если он есть.
func (c *Catalogue) FirstActive() (*Skill, bool) {
	for _, s := range c.skills {
		if s.Purchased && !s.Def.Passive {
			return s, true
		}
	}
	return nil, false
}

// PurchasedNames — имена купленных навыков в порядке каталога
func (c *Catalogue) PurchasedNames() []string {
	names := make([]string, 0, len(c.skills))
	for _, s := range c.skills {
		if s.Purchased {
			names = append(names, s.Def.Name)
		}
	}
	return names
}

// Update продвигает таймеры всех навыков и обновляет снимок состояния у игрока.
func (c *Catalogue) Update(p *component.Player, dt float64) {
	if p.Skills == nil {
		p.Skills = make(map[string]component.SkillStatus, len(c.skills))
	}
	for _, s := range c.skills {
		s.Update(p, dt)
		if s.Purchased {
			p.Skills[s.Def.ID] = s.Status()
		}
	}
}
