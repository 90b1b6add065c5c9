// internal/ui/shop_view.go
package ui

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/shop"
)

const (
	skillRowHeight = 78
	skillRowWidth  = 760
	buyButtonW     = 120
	buyButtonH     = 44
	popupW         = 520
	popupH         = 200
)

// ShopView рисует магазин и передаёт клики в shop.Shop.
// Магазин запрашивается функцией, потому что после повтора сессии он новый.
type ShopView struct {
	fonts   *Fonts
	shop    func() *shop.Shop
	coins   func() int
	back    *Button
	yes, no *Button
	w, h    int
}

func NewShopView(fonts *Fonts, current func() *shop.Shop, coins func() int, w, h int) *ShopView {
	v := &ShopView{fonts: fonts, shop: current, coins: coins, w: w, h: h}
	v.back = NewButton(image.Rect(config.HUDMargin, config.HUDMargin, config.HUDMargin+140, config.HUDMargin+50), "Back")
	v.yes = NewButton(centeredRect(w/2-90, h/2+50, 140, 50), "Yes")
	v.yes.BgColor = config.ConfirmColor
	v.yes.TextColor = config.TextDarkColor
	v.no = NewButton(centeredRect(w/2+90, h/2+50, 140, 50), "No")
	v.no.BgColor = config.CancelColor
	return v
}

// rowRect — строка навыка i
func (v *ShopView) rowRect(i int) image.Rectangle {
	x := v.w/2 - skillRowWidth/2
	y := 140 + i*(skillRowHeight+10)
	return image.Rect(x, y, x+skillRowWidth, y+skillRowHeight)
}

func (v *ShopView) buyRect(i int) image.Rectangle {
	r := v.rowRect(i)
	return centeredRect(r.Max.X-buyButtonW/2-16, r.Min.Y+skillRowHeight/2, buyButtonW, buyButtonH)
}

// Update обрабатывает клики. Возвращает true, когда игрок закрыл магазин.
func (v *ShopView) Update() bool {
	s := v.shop()
	if s.Confirming() {
		switch {
		case v.yes.Clicked():
			// Ошибка уже показана уведомлением и записана в лог
			_ = s.Confirm()
		case v.no.Clicked():
			s.Cancel()
		}
		return false
	}

	if v.back.Clicked() {
		s.Cancel()
		return true
	}
	for i, sk := range s.Skills() {
		if sk.Purchased {
			continue
		}
		buy := Button{Rect: v.buyRect(i)}
		if buy.Clicked() {
			_ = s.Select(sk.ID())
		}
	}
	return false
}

func (v *ShopView) Draw(screen *ebiten.Image) {
	s := v.shop()
	DrawCentered(screen, "Shop", v.fonts.Title, v.w/2, 60, config.TextLightColor)
	DrawCentered(screen, fmt.Sprintf("Coins: %d", v.coins()), v.fonts.Regular, v.w/2, 105, config.CoinTextColor)
	v.back.Draw(screen, v.fonts.Regular)

	for i, sk := range s.Skills() {
		r := v.rowRect(i)
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.PopupBackColor, true)
		DrawText(screen, fmt.Sprintf("%s  (%d)", sk.Name(), sk.Price()), v.fonts.Regular, r.Min.X+16, r.Min.Y+12, config.TextLightColor)
		DrawText(screen, sk.Def.Description, v.fonts.Small, r.Min.X+16, r.Min.Y+46, config.TextLightColor)

		buy := NewButton(v.buyRect(i), "Buy")
		if sk.Purchased {
			buy.Text = "Sold"
			buy.BgColor = config.SoldColor
			buy.Disabled = true
		}
		buy.Draw(screen, v.fonts.Regular)
	}

	if sk := s.Buying(); sk != nil {
		r := centeredRect(v.w/2, v.h/2, popupW, popupH)
		vector.DrawFilledRect(screen, 0, 0, float32(v.w), float32(v.h), config.BarBackColor, false)
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), popupW, popupH, config.PopupBackColor, true)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), popupW, popupH, 2, config.TextLightColor, true)
		DrawCentered(screen, fmt.Sprintf("Buy %s for %d coins?", sk.Name(), sk.Price()), v.fonts.Regular,
			v.w/2, r.Min.Y+50, config.TextLightColor)
		v.yes.Draw(screen, v.fonts.Regular)
		v.no.Draw(screen, v.fonts.Regular)
	}

	if n := s.Notice(); n != shop.NoticeNone {
		r := centeredRect(v.w/2, v.h-80, 420, 60)
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), config.WarningColor, true)
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, config.WarningStroke, true)
		DrawCentered(screen, n.String(), v.fonts.Regular, v.w/2, v.h-80, config.WarningStroke)
	}
}
