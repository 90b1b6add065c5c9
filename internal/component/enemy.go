// internal/component/enemy.go
package component

// Наборы кадров врага
const (
	EnemyWalk   = "walk"
	EnemyAttack = "attack"
)

// Enemy — патрулирующий враг. Ссылки на игрока не хранит:
// игрок находится через мир на каждом тике.
type Enemy struct {
	Body
	DefID     int
	Sprite    string  // каталог спрайтов врага
	Direction float64 // -1 влево, 1 вправо
	Speed     float64 // пикселей в секунду
	Damage    float64
	Anim      Animation
}

func (e *Enemy) FacingLeft() bool {
	return e.Direction < 0
}
