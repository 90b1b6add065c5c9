// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/skill"
)

const (
	barBorder = 2
	iconSize  = 40
	rowGap    = 12
)

// HUD отображает полосы здоровья и кислорода, монеты, сокровища и навыки.
type HUD struct {
	fonts        *Fonts
	coinIcon     *ebiten.Image
	treasureIcon *ebiten.Image
}

// NewHUD создает HUD. Иконки необязательны.
func NewHUD(fonts *Fonts, coinIcon, treasureIcon *ebiten.Image) *HUD {
	return &HUD{fonts: fonts, coinIcon: coinIcon, treasureIcon: treasureIcon}
}

// Draw рисует HUD забега.
func (h *HUD) Draw(screen *ebiten.Image, p *component.Player, runCoins, treasures int, cat *skill.Catalogue) {
	x := float32(config.HUDMargin)
	y := float32(config.HUDMargin)

	h.drawBar(screen, x, y, p.HealthPercent(), config.HealthBarColor, "Health", capacityMark(&p.HealthMax))
	y += config.HUDBarHeight + rowGap
	h.drawBar(screen, x, y, p.OxygenPercent(), config.OxygenBarColor, "Oxygen", capacityMark(&p.OxygenMax))
	y += config.HUDBarHeight + rowGap

	h.drawCounter(screen, h.coinIcon, x, y, fmt.Sprintf("x %d", runCoins), config.CoinTextColor)
	y += iconSize + rowGap/2
	h.drawCounter(screen, h.treasureIcon, x, y, fmt.Sprintf("%d/%d", treasures, config.TreasureCount), config.TextLightColor)
	y += iconSize + rowGap

	for _, line := range skillLines(p, cat) {
		DrawText(screen, line, h.fonts.Small, int(x), int(y), config.TextLightColor)
		y += smallFontSize + 6
	}
}

// drawBar рисует полосу с процентами. mark в (0, 1) отмечает базовый максимум,
// если навык поднял ёмкость; 0 — без отметки.
func (h *HUD) drawBar(screen *ebiten.Image, x, y float32, percent float64, fill color.RGBA, label string, mark float64) {
	w, hh := float32(config.HUDBarWidth), float32(config.HUDBarHeight)
	vector.DrawFilledRect(screen, x, y, w, hh, config.BarBackColor, true)

	fillW := (w - barBorder*2) * float32(percent/100)
	if fillW > 0 {
		vector.DrawFilledRect(screen, x+barBorder, y+barBorder, fillW, hh-barBorder*2, fill, true)
	}
	if mark > 0 && mark < 1 {
		mx := x + barBorder + (w-barBorder*2)*float32(mark)
		vector.StrokeLine(screen, mx, y, mx, y+hh, 2, config.BarMarkColor, true)
	}
	vector.StrokeRect(screen, x, y, w, hh, barBorder, config.TextLightColor, true)

	DrawCentered(screen, fmt.Sprintf("%s %d%%", label, int(percent)), h.fonts.Small,
		int(x+w/2), int(y+hh/2), config.TextLightColor)
}

func (h *HUD) drawCounter(screen, icon *ebiten.Image, x, y float32, value string, clr color.Color) {
	if icon != nil {
		op := &ebiten.DrawImageOptions{}
		b := icon.Bounds()
		op.GeoM.Scale(iconSize/float64(b.Dx()), iconSize/float64(b.Dy()))
		op.GeoM.Translate(float64(x), float64(y))
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(icon, op)
	} else {
		vector.DrawFilledCircle(screen, x+iconSize/2, y+iconSize/2, iconSize/2-4, clr, true)
	}
	DrawText(screen, value, h.fonts.Regular, int(x)+iconSize+10, int(y)+iconSize/2-regularFontSize/2, clr)
}

// capacityMark — доля базового максимума от текущего, если он изменён навыком.
func capacityMark(s *component.Stat) float64 {
	base, ok := s.Base()
	if !ok || s.Value <= 0 {
		return 0
	}
	return base / s.Value
}

// skillLines описывает активные навыки и щит для HUD.
func skillLines(p *component.Player, cat *skill.Catalogue) []string {
	var lines []string
	for _, sk := range cat.All() {
		if !sk.Purchased || sk.Passive() {
			continue
		}
		st := sk.Status()
		switch {
		case st.Active:
			lines = append(lines, fmt.Sprintf("%s: %.1fs", sk.Name(), st.Remaining))
		case st.OnCooldown:
			lines = append(lines, fmt.Sprintf("%s: cooldown %.0fs", sk.Name(), st.Cooldown))
		default:
			lines = append(lines, fmt.Sprintf("%s: ready (SPACE)", sk.Name()))
		}
	}
	if p.HasShield {
		lines = append(lines, fmt.Sprintf("Shield: %d/%d", p.ShieldCharges, p.ShieldMaxCharges))
	}
	return lines
}
