// internal/state/keyboard.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"deep-dive-dash/internal/input"
)

var _ input.Provider = KeyboardInput{}

// KeyboardInput читает клавиатуру ebiten. Стрелки и WASD двигают,
// Space или E включают активный навык.
type KeyboardInput struct{}

func (KeyboardInput) Keys() input.State {
	var keys []input.Key
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		keys = append(keys, input.Left)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		keys = append(keys, input.Right)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		keys = append(keys, input.Up)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		keys = append(keys, input.Down)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyE) {
		keys = append(keys, input.Activate)
	}
	return input.Keys(keys...)
}
