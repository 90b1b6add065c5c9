// internal/defs/coins.go
package defs

// CoinDefinition — тип монеты и его вес при случайном выборе.
type CoinDefinition struct {
	ID     string `yaml:"id"`
	Value  int    `yaml:"value"`
	Weight int    `yaml:"weight"`
}
