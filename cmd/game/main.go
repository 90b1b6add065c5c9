// cmd/game/main.go
package main

import (
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"deep-dive-dash/internal/app"
	"deep-dive-dash/internal/assets"
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/defs"
	"deep-dive-dash/internal/persist"
	"deep-dive-dash/internal/render"
	"deep-dive-dash/internal/state"
	"deep-dive-dash/internal/system"
	"deep-dive-dash/internal/ui"
	"deep-dive-dash/pkg/tilemap"
)

const settingsFile = "settings.toml"

type AppGame struct {
	logger         *zap.Logger
	game           *app.Game
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	err := a.stateMachine.Update(deltaTime)
	if errors.Is(err, state.ErrQuit) || (err == nil && ebiten.IsWindowBeingClosed()) {
		return a.quit()
	}
	return err
}

// quit сохраняет прогресс и завершает цикл ebiten.
func (a *AppGame) quit() error {
	a.logger.Info("quit requested")
	if err := a.game.Shutdown(); err != nil {
		return err
	}
	return ebiten.Termination
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.LoadSettings(settingsFile)
	if err != nil {
		return err
	}
	logger, err := newLogger(settings.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	if addr := settings.Debug.PprofAddr; addr != "" {
		go func() {
			logger.Info("pprof listening", zap.String("addr", addr))
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.Warn("pprof server stopped", zap.Error(err))
			}
		}()
	}

	catalogue, err := defs.Load(settings.Game.SkillsFile)
	if err != nil {
		return err
	}

	assetDir := settings.Game.AssetDir
	library := assets.NewLibrary(logger, assetDir)
	assetManifest := manifest(catalogue)
	if err := library.Load(assetManifest); err != nil {
		return err
	}

	seed := settings.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mapPath := filepath.Join(assetDir, "tiles", "map.csv")
	game, err := app.NewGame(logger, app.Options{
		PlayerID:  settings.Game.PlayerID,
		Seed:      seed,
		Catalogue: catalogue,
		Sprites:   library,
		Store:     persist.NewFileStore(settings.Game.SaveDir),
		LoadGrid: func() (*tilemap.TileMap, error) {
			return tilemap.Load(mapPath, config.TileSize)
		},
	})
	if err != nil {
		return err
	}

	width, height := screenSize(settings.Game)
	game.SetScreenSize(float64(width), float64(height))

	renderer := render.NewRenderer(library)
	fonts := ui.LoadFonts(logger, filepath.Join(assetDir, "fonts", "font.ttf"))
	ctx := &state.Context{
		Logger:   logger,
		Game:     game,
		Renderer: renderer,
		Assets:   library,
		Manifest: assetManifest,
		Fonts:    fonts,
		HUD:      ui.NewHUD(fonts, optionalImage(renderer, library, "icon_coin"), optionalImage(renderer, library, "icon_treasure")),
		Input:    state.KeyboardInput{},
		Width:    width,
		Height:   height,
	}
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, ctx))

	a := &AppGame{
		logger:         logger,
		game:           game,
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          width,
		height:         height,
	}

	ebiten.SetWindowTitle("Deep Dive")
	ebiten.SetWindowSize(width, height)
	ebiten.SetFullscreen(settings.Game.Fullscreen)
	ebiten.SetTPS(config.FPS)
	ebiten.SetWindowClosingHandled(true)

	logger.Info("starting game", zap.Int("width", width), zap.Int("height", height), zap.Int64("seed", seed))
	if err := ebiten.RunGame(a); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	logger.Info("game exited")
	return nil
}

// screenSize — размер монитора в полноэкранном режиме, иначе размер окна из настроек.
func screenSize(s config.GameSettings) (int, int) {
	if s.Fullscreen {
		if w, h := ebiten.Monitor().Size(); w > 0 && h > 0 {
			return w, h
		}
	}
	return s.WindowWidth, s.WindowHeight
}

func manifest(c *defs.Catalogue) assets.Manifest {
	m := assets.Manifest{Treasures: system.TreasureTypes}
	enemies := c.Enemies
	if len(enemies) == 0 {
		enemies = system.DefaultArchetypes()
	}
	for _, e := range enemies {
		m.Enemies = append(m.Enemies, e.Sprite)
	}
	for _, coin := range c.Coins {
		m.Coins = append(m.Coins, coin.ID)
	}
	return m
}

func optionalImage(r *render.Renderer, lib *assets.Library, name string) *ebiten.Image {
	img, ok := lib.Image(name)
	if !ok {
		return nil
	}
	return r.Texture(img)
}

func newLogger(cfg config.LoggingSettings) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
