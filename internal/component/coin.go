// internal/component/coin.go
package component

// Coin — монета на уровне
type Coin struct {
	Body
	Type       string // "gold", "silver"
	Value      int
	Anim       Animation
	Magnetized bool // притягивается к игроку, если тот в радиусе магнита
}
