// internal/defs/loader.go
package defs

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var defaultCatalogue []byte

// Catalogue — все статические определения игры.
type Catalogue struct {
	Skills  []SkillDefinition `yaml:"skills"`
	Enemies []EnemyDefinition `yaml:"enemies"`
	Coins   []CoinDefinition  `yaml:"coins"`
}

// Default возвращает встроенный каталог.
func Default() (*Catalogue, error) {
	c, err := Parse(defaultCatalogue)
	if err != nil {
		return nil, fmt.Errorf("embedded catalogue: %w", err)
	}
	return c, nil
}

// Load читает каталог из файла. Пустой путь означает встроенный каталог.
func Load(path string) (*Catalogue, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalogue %s: %w", path, err)
	}
	return c, nil
}

// Parse разбирает YAML и проверяет определения.
func Parse(data []byte) (*Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalogue: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalogue) validate() error {
	seen := make(map[string]bool, len(c.Skills))
	for _, s := range c.Skills {
		if s.ID == "" || s.Name == "" {
			return fmt.Errorf("skill %q: id and name are required", s.Name)
		}
		if seen[s.ID] || seen[s.Name] {
			return fmt.Errorf("skill %q: duplicate id or name", s.ID)
		}
		seen[s.ID], seen[s.Name] = true, true
		if !s.Effect.Valid() {
			return fmt.Errorf("skill %q: unknown effect %q", s.ID, s.Effect)
		}
		if s.Price <= 0 {
			return fmt.Errorf("skill %q: price must be positive", s.ID)
		}
		if s.Effect == EffectShield {
			if s.Charges <= 0 {
				return fmt.Errorf("skill %q: shield needs charges", s.ID)
			}
		} else if s.Multiplier <= 0 {
			return fmt.Errorf("skill %q: multiplier must be positive", s.ID)
		}
		if !s.Passive && s.Duration <= 0 {
			return fmt.Errorf("skill %q: active skill needs a duration", s.ID)
		}
	}

	ids := make(map[int]bool, len(c.Enemies))
	for _, e := range c.Enemies {
		if ids[e.ID] {
			return fmt.Errorf("enemy %d: duplicate id", e.ID)
		}
		ids[e.ID] = true
		if e.Speed <= 0 {
			return fmt.Errorf("enemy %d: speed must be positive", e.ID)
		}
	}

	if len(c.Coins) == 0 {
		return fmt.Errorf("catalogue has no coin types")
	}
	for _, coin := range c.Coins {
		if coin.Value <= 0 || coin.Weight < 0 {
			return fmt.Errorf("coin %q: invalid value or weight", coin.ID)
		}
	}
	return nil
}

// CoinByID ищет тип монеты по ID.
func (c *Catalogue) CoinByID(id string) (CoinDefinition, bool) {
	for _, coin := range c.Coins {
		if coin.ID == id {
			return coin, true
		}
	}
	return CoinDefinition{}, false
}
