// internal/ui/menu.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"deep-dive-dash/internal/config"
)

const (
	menuButtonWidth  = 260
	menuButtonHeight = 64
	menuButtonGap    = 24
)

// MenuAction — выбор игрока в главном меню
type MenuAction int

const (
	MenuNone MenuAction = iota
	MenuPlay
	MenuShop
	MenuExit
)

// MenuView — главное меню: Play / Shop / Exit.
type MenuView struct {
	fonts   *Fonts
	buttons []*Button
	actions []MenuAction
	w, h    int
}

func NewMenuView(fonts *Fonts, w, h int) *MenuView {
	v := &MenuView{fonts: fonts, w: w, h: h}
	labels := []string{"Play", "Shop", "Exit"}
	v.actions = []MenuAction{MenuPlay, MenuShop, MenuExit}
	top := h/2 - (len(labels)*(menuButtonHeight+menuButtonGap))/2 + menuButtonHeight
	for i, label := range labels {
		cy := top + i*(menuButtonHeight+menuButtonGap)
		v.buttons = append(v.buttons, NewButton(centeredRect(w/2, cy, menuButtonWidth, menuButtonHeight), label))
	}
	return v
}

// Update возвращает нажатую в этом кадре кнопку.
func (v *MenuView) Update() MenuAction {
	for i, b := range v.buttons {
		if b.Clicked() {
			return v.actions[i]
		}
	}
	return MenuNone
}

func (v *MenuView) Draw(screen *ebiten.Image, totalCoins int) {
	DrawCentered(screen, "Deep Dive", v.fonts.Title, v.w/2, v.h/4, config.TextLightColor)
	DrawCentered(screen, fmt.Sprintf("Coins: %d", totalCoins), v.fonts.Regular, v.w/2, v.h/4+60, config.CoinTextColor)
	for _, b := range v.buttons {
		b.Draw(screen, v.fonts.Regular)
	}
}
