// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"deep-dive-dash/internal/component"
)

// GameState — идёт забег
type GameState struct {
	sm      *StateMachine
	ctx     *Context
	elapsed float64
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	return &GameState{sm: sm, ctx: ctx}
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	g.elapsed += deltaTime
	if err := g.ctx.Game.Update(g.ctx.Input.Keys(), deltaTime); err != nil {
		return err
	}
	if g.ctx.Game.Phase() == component.GameOverPhase {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, g))
	}
	return nil
}

func (g *GameState) Draw(screen *ebiten.Image) {
	game := g.ctx.Game
	g.ctx.Renderer.DrawBackground(screen, game.CameraOffset, game.Grid.PixelWidth(), game.Grid.PixelHeight(), g.elapsed)
	g.ctx.Renderer.DrawWorld(screen, game)
	g.ctx.HUD.Draw(screen, game.Player(), game.RunCoins(), game.CollectedTreasures(), game.Catalogue)
}

func (g *GameState) Exit() {}
