// internal/component/submarine.go
package component

// Submarine — цель уровня в правом нижнем углу карты
type Submarine struct {
	Body
}
