package system

import (
	"testing"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/entity"
	"deep-dive-dash/pkg/tilemap"
)

// openGrid — карта cols x rows без стен, плюс стены в указанных клетках
func openGrid(t *testing.T, cols, rows int, walls ...[2]int) *tilemap.TileMap {
	t.Helper()
	data := make([][]int, rows)
	for r := range data {
		data[r] = make([]int, cols)
		for c := range data[r] {
			data[r][c] = -1
		}
	}
	for _, w := range walls {
		data[w[1]][w[0]] = 0
	}
	grid, err := tilemap.New(data, 64)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return grid
}

func solidGrid(t *testing.T, cols, rows int) *tilemap.TileMap {
	t.Helper()
	data := make([][]int, rows)
	for r := range data {
		data[r] = make([]int, cols)
	}
	grid, err := tilemap.New(data, 64)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return grid
}

var testSprites = component.StaticSprites{
	component.PlayerSprite(component.PlayerIdle):     {Frames: 4, Width: 32, Height: 32},
	component.PlayerSprite(component.PlayerSwimming): {Frames: 6, Width: 32, Height: 32},
	component.SubmarineSprite:                        {Frames: 1, Width: 200, Height: 100},
	component.TreasureSprite("treasure1"):            {Frames: 10, Width: 96, Height: 64},
	component.TreasureSprite("treasure2"):            {Frames: 10, Width: 96, Height: 64},
	component.TreasureSprite("treasure3"):            {Frames: 10, Width: 96, Height: 64},
}

func newTestWorld() *entity.World {
	w := entity.NewWorld()
	w.Player = NewPlayer(testSprites)
	return w
}

// coinLedger записывает зачисленные монеты вместо сохранения
type coinLedger struct {
	collected []int
}

func (l *coinLedger) CollectCoin(value int) error {
	l.collected = append(l.collected, value)
	return nil
}
