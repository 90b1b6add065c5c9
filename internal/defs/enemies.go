// internal/defs/enemies.go
package defs

// EnemyDefinition описывает архетип врага. Спрайты лежат в enemies/<Sprite>/walk|attack.
type EnemyDefinition struct {
	ID     int     `yaml:"id"`
	Sprite string  `yaml:"sprite"`
	Speed  float64 `yaml:"speed"`
	Damage float64 `yaml:"damage"`
}
