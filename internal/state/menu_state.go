// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/shop"
	"deep-dive-dash/internal/ui"
)

// MenuState — главное меню с магазином поверх прокручиваемого фона
type MenuState struct {
	sm       *StateMachine
	ctx      *Context
	menu     *ui.MenuView
	shopView *ui.ShopView
	shopOpen bool
	scrollX  float64
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	g := ctx.Game
	shopView := ui.NewShopView(ctx.Fonts, func() *shop.Shop { return g.Shop }, g.TotalCoins, ctx.Width, ctx.Height)
	return &MenuState{
		sm:       sm,
		ctx:      ctx,
		menu:     ui.NewMenuView(ctx.Fonts, ctx.Width, ctx.Height),
		shopView: shopView,
	}
}

func (m *MenuState) Enter() {
	m.shopOpen = false
}

func (m *MenuState) Update(deltaTime float64) error {
	m.scrollX += config.MenuScrollSpeed
	// Таймер уведомлений магазина
	if err := m.ctx.Game.Update(0, deltaTime); err != nil {
		return err
	}

	if m.shopOpen {
		if m.shopView.Update() {
			m.shopOpen = false
		}
		return nil
	}

	switch m.menu.Update() {
	case ui.MenuPlay:
		m.ctx.Game.StartRun()
		m.sm.SetState(NewGameState(m.sm, m.ctx))
	case ui.MenuShop:
		m.shopOpen = true
	case ui.MenuExit:
		return ErrQuit
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.ctx.Renderer.DrawMenuBackground(screen, m.scrollX)
	if m.shopOpen {
		m.shopView.Draw(screen)
		return
	}
	m.menu.Draw(screen, m.ctx.Game.TotalCoins())
}

func (m *MenuState) Exit() {}
