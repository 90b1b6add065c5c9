// internal/system/coin.go
package system

import (
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/entity"
	"deep-dive-dash/internal/interfaces"
	"deep-dive-dash/internal/types"
)

// CoinSystem анимирует монеты, тянет их магнитом и собирает при касании.
type CoinSystem struct {
	world *entity.World
	game  interfaces.GameContext
}

func NewCoinSystem(world *entity.World, game interfaces.GameContext) *CoinSystem {
	return &CoinSystem{world: world, game: game}
}

// Update продвигает анимацию и притяжение. Монета, подтянутая ближе
// CoinSnapDistance, удаляется и зачисляется сразу, до обработки следующей.
func (s *CoinSystem) Update() error {
	p := s.world.Player
	target := p.Rect.Center()

	for _, id := range entity.SortedIDs(s.world.Coins) {
		coin := s.world.Coins[id]
		coin.Anim.Step()

		if !coin.Magnetized {
			continue
		}
		toPlayer := target.Sub(coin.Rect.Center())
		dist := toPlayer.Len()
		if dist > p.MagnetRadius.Value {
			continue
		}
		if dist < config.CoinSnapDistance {
			if err := s.collect(id); err != nil {
				return err
			}
			continue
		}
		step := toPlayer.Normalize().Scale(config.CoinMagnetSpeed)
		coin.Rect = coin.Rect.Moved(coin.Rect.X+step.X, coin.Rect.Y+step.Y)
	}
	return nil
}

// ApplyMagnet включает или выключает притяжение у всех монет.
func (s *CoinSystem) ApplyMagnet(active bool) {
	for _, coin := range s.world.Coins {
		coin.Magnetized = active
	}
}

// CollectOverlapping собирает монеты, пересекающиеся с игроком.
func (s *CoinSystem) CollectOverlapping() error {
	body := s.world.Player.Rect
	for _, id := range entity.SortedIDs(s.world.Coins) {
		if body.Overlaps(s.world.Coins[id].Rect) {
			if err := s.collect(id); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *CoinSystem) collect(id types.EntityID) error {
	coin := s.world.Coins[id]
	delete(s.world.Coins, id)
	return s.game.CollectCoin(coin.Value)
}

