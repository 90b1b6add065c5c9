// internal/defs/skills.go
package defs

// SkillDefinition — статические данные навыка из каталога.
type SkillDefinition struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Price       int        `yaml:"price"`
	Passive     bool       `yaml:"passive"`
	Duration    float64    `yaml:"duration"` // секунды, только для активных
	Cooldown    float64    `yaml:"cooldown"` // секунды, только для активных
	Effect      EffectKind `yaml:"effect"`
	Multiplier  float64    `yaml:"multiplier"`
	Charges     int        `yaml:"charges"` // для щита
}
