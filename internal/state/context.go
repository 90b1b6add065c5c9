// internal/state/context.go
package state

import (
	"go.uber.org/zap"

	"deep-dive-dash/internal/app"
	"deep-dive-dash/internal/assets"
	"deep-dive-dash/internal/input"
	"deep-dive-dash/internal/render"
	"deep-dive-dash/internal/ui"
)

// Context — то, что нужно всем экранам.
type Context struct {
	Logger   *zap.Logger
	Game     *app.Game
	Renderer *render.Renderer
	Assets   *assets.Library
	Manifest assets.Manifest
	Fonts    *ui.Fonts
	HUD      *ui.HUD
	Input    input.Provider
	Width    int
	Height   int
}
