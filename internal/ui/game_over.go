// internal/ui/game_over.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"deep-dive-dash/internal/config"
)

// GameOverAction — выбор на экране конца забега
type GameOverAction int

const (
	GameOverNone GameOverAction = iota
	GameOverRetry
	GameOverExit
)

type GameOverView struct {
	fonts       *Fonts
	retry, exit *Button
	w, h        int
}

func NewGameOverView(fonts *Fonts, w, h int) *GameOverView {
	return &GameOverView{
		fonts: fonts,
		retry: NewButton(centeredRect(w/2-150, h/2+80, 240, 64), "Retry"),
		exit:  NewButton(centeredRect(w/2+150, h/2+80, 240, 64), "Exit"),
		w:     w,
		h:     h,
	}
}

func (v *GameOverView) Update() GameOverAction {
	switch {
	case v.retry.Clicked():
		return GameOverRetry
	case v.exit.Clicked():
		return GameOverExit
	}
	return GameOverNone
}

func (v *GameOverView) Draw(screen *ebiten.Image, win bool, runCoins, treasures int) {
	vector.DrawFilledRect(screen, 0, 0, float32(v.w), float32(v.h), config.PopupBackColor, false)

	title, clr := "You ran out of luck", config.WarningStroke
	if win {
		title, clr = "You made it back!", config.ConfirmColor
	}
	DrawCentered(screen, title, v.fonts.Title, v.w/2, v.h/2-100, clr)
	DrawCentered(screen, fmt.Sprintf("Coins this dive: %d   Treasures: %d/%d", runCoins, treasures, config.TreasureCount),
		v.fonts.Regular, v.w/2, v.h/2-30, config.TextLightColor)

	v.retry.Draw(screen, v.fonts.Regular)
	v.exit.Draw(screen, v.fonts.Regular)
}
