// internal/interfaces/game_context.go
package interfaces

// GameContext — то, что системам нужно от сессии.
// Это помогает избежать циклических зависимостей между system и app.
type GameContext interface {
	// CollectCoin зачисляет монету в счёт забега и общий счёт и сохраняет прогресс.
	CollectCoin(value int) error
}
