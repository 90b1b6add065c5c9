// internal/system/oxygen.go
package system

import "deep-dive-dash/internal/config"

// OxygenSystem расходует кислород со временем.
type OxygenSystem struct {
	player *PlayerSystem
}

func NewOxygenSystem(player *PlayerSystem) *OxygenSystem {
	return &OxygenSystem{player: player}
}

// Update списывает OxygenDecayPerSecond*dt с учётом множителя игрока.
// Возвращает false, когда кислорода не осталось.
func (s *OxygenSystem) Update(deltaTime float64) bool {
	return s.player.UpdateOxygen(config.OxygenDecayPerSecond * deltaTime)
}
