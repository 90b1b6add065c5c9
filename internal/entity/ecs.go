// internal/entity/ecs.go
package entity

import (
	"sort"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/types"
)

// World хранит все сущности текущего уровня.
type World struct {
	NextID    types.EntityID
	Player    *component.Player
	Enemies   map[types.EntityID]*component.Enemy
	Coins     map[types.EntityID]*component.Coin
	Treasures map[types.EntityID]*component.Treasure
	Bubbles   []*component.Bubble // в порядке появления, старые в начале
	Submarine *component.Submarine
}

func NewWorld() *World {
	return &World{
		NextID:    1,
		Enemies:   make(map[types.EntityID]*component.Enemy),
		Coins:     make(map[types.EntityID]*component.Coin),
		Treasures: make(map[types.EntityID]*component.Treasure),
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// SortedIDs возвращает ключи карты по возрастанию, чтобы тик был детерминированным.
func SortedIDs[T any](m map[types.EntityID]T) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// CollectedTreasures — число полностью собранных сокровищ
func (w *World) CollectedTreasures() int {
	n := 0
	for _, t := range w.Treasures {
		if t.Collected {
			n++
		}
	}
	return n
}
