// internal/app/game.go
package app

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/config"
	"deep-dive-dash/internal/defs"
	"deep-dive-dash/internal/entity"
	"deep-dive-dash/internal/event"
	"deep-dive-dash/internal/input"
	"deep-dive-dash/internal/persist"
	"deep-dive-dash/internal/shop"
	"deep-dive-dash/internal/skill"
	"deep-dive-dash/internal/system"
	"deep-dive-dash/internal/utils"
	"deep-dive-dash/pkg/geom"
	"deep-dive-dash/pkg/tilemap"
)

// Options — внешние зависимости игры.
type Options struct {
	PlayerID  string
	Seed      int64
	Catalogue *defs.Catalogue
	Sprites   component.SpriteSource
	Store     persist.Store
	// LoadGrid вызывается при каждом создании сессии, в том числе при повторе
	LoadGrid func() (*tilemap.TileMap, error)
}

// Game holds the session state and runs the menu -> running -> gameover cycle.
type Game struct {
	RunID           string
	Grid            *tilemap.TileMap
	World           *entity.World
	Catalogue       *skill.Catalogue
	Shop            *shop.Shop
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService
	CameraOffset    geom.Vec

	PlayerSystem   *system.PlayerSystem
	MovementSystem *system.MovementSystem
	SpawnSystem    *system.SpawnSystem
	LevelGenerator *system.LevelGenerator
	CoinSystem     *system.CoinSystem
	TreasureSystem *system.TreasureSystem
	BubbleSystem   *system.BubbleSystem
	CombatSystem   *system.CombatSystem
	OxygenSystem   *system.OxygenSystem
	StateSystem    *system.StateSystem

	baseLogger *zap.Logger
	logger     *zap.Logger
	opts       Options

	screenW, screenH   float64
	coinCount          int // монеты текущего забега
	totalCoins         int // сохранённый общий счёт
	collectedTreasures int
}

// NewGame создаёт игру и первую сессию в фазе меню.
func NewGame(logger *zap.Logger, opts Options) (*Game, error) {
	if opts.Catalogue == nil || opts.Sprites == nil || opts.Store == nil || opts.LoadGrid == nil {
		return nil, fmt.Errorf("new game: catalogue, sprites, store and grid loader are required")
	}
	g := &Game{
		EventDispatcher: event.NewDispatcher(),
		Rng:             utils.NewPRNGService(opts.Seed),
		baseLogger:      logger,
		opts:            opts,
		screenW:         1280,
		screenH:         720,
	}

	listener := &GameEventListener{game: g}
	g.EventDispatcher.Subscribe(event.TreasureCollected, listener)
	g.EventDispatcher.Subscribe(event.SkillActivated, listener)

	if err := g.newSession(); err != nil {
		return nil, err
	}
	return g, nil
}

// newSession пересоздаёт всё, что живёт один забег: карту, сущности,
// каталог навыков и магазин. Прогресс перечитывается из хранилища.
// Новая сессия собирается целиком и подменяет старую только после
// успешной генерации уровня.
func (g *Game) newSession() error {
	runID := uuid.NewString()
	logger := g.baseLogger.With(zap.String("run_id", runID))

	grid, err := g.opts.LoadGrid()
	if err != nil {
		return fmt.Errorf("load level grid: %w", err)
	}

	progress, err := g.opts.Store.Load(g.opts.PlayerID)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	catalogue := skill.NewCatalogue(g.opts.Catalogue.Skills)
	if unknown := progress.ApplyTo(catalogue); len(unknown) > 0 {
		logger.Warn("save lists unknown skills", zap.Strings("skills", unknown))
	}

	world := entity.NewWorld()
	world.Player = system.NewPlayer(g.opts.Sprites)

	playerSystem := system.NewPlayerSystem(logger, world, grid, catalogue, g.EventDispatcher)
	playerSystem.ApplyOwnedSkills()

	archetypes := g.opts.Catalogue.Enemies
	if len(archetypes) == 0 {
		archetypes = system.DefaultArchetypes()
	}
	spawnSystem := system.NewSpawnSystem(logger, world, grid, g.opts.Sprites, g.Rng)
	spawned := spawnSystem.SpawnEnemies(archetypes, world.Player.Rect.Center())

	levelGenerator := system.NewLevelGenerator(logger, world, grid, g.opts.Sprites, g.Rng)
	if err := levelGenerator.Generate(g.opts.Catalogue.Coins, config.CoinCount); err != nil {
		return fmt.Errorf("generate level: %w", err)
	}

	g.RunID = runID
	g.logger = logger
	g.Grid = grid
	g.World = world
	g.Catalogue = catalogue
	g.totalCoins = progress.Coins
	g.coinCount = 0
	g.collectedTreasures = 0
	g.CameraOffset = geom.Vec{}

	g.PlayerSystem = playerSystem
	g.MovementSystem = system.NewMovementSystem(world, grid)
	g.SpawnSystem = spawnSystem
	g.LevelGenerator = levelGenerator
	g.CoinSystem = system.NewCoinSystem(world, g)
	g.TreasureSystem = system.NewTreasureSystem(world, g.EventDispatcher)
	g.BubbleSystem = system.NewBubbleSystem(world, g.Rng)
	g.CombatSystem = system.NewCombatSystem(world, playerSystem)
	g.OxygenSystem = system.NewOxygenSystem(playerSystem)
	g.StateSystem = system.NewStateSystem(logger, g.EventDispatcher)
	g.Shop = shop.NewShop(logger, catalogue, g, g.opts.Store, g.opts.PlayerID, world.Player, g.EventDispatcher)

	logger.Info("session created",
		zap.String("player_id", g.opts.PlayerID),
		zap.Int("total_coins", progress.Coins),
		zap.Strings("skills", catalogue.PurchasedNames()),
		zap.Int("enemies", spawned),
		zap.Int("coins", len(world.Coins)),
	)
	return nil
}

// SetScreenSize задаёт размер экрана для расчёта камеры.
func (g *Game) SetScreenSize(w, h float64) {
	g.screenW, g.screenH = w, h
}

func (g *Game) Phase() component.Phase { return g.StateSystem.Current() }
func (g *Game) Win() bool { return g.StateSystem.Win() }
func (g *Game) Player() *component.Player {
	return g.World.Player
}

// RunCoins — монеты, собранные в текущем забеге
func (g *Game) RunCoins() int { return g.coinCount }

func (g *Game) CollectedTreasures() int { return g.collectedTreasures }

// TotalCoins и SetTotalCoins делают Game счётом для магазина.
func (g *Game) TotalCoins() int { return g.totalCoins }

func (g *Game) SetTotalCoins(n int) { g.totalCoins = n }

// StartRun переводит игру из меню в забег.
func (g *Game) StartRun() {
	if g.Phase() != component.MenuPhase {
		return
	}
	p := g.World.Player
	p.Oxygen = p.OxygenMax.Value
	g.coinCount = 0
	g.collectedTreasures = 0
	g.Shop.Cancel()
	g.StateSystem.SwitchToRunning()
}

// Retry начинает всё заново после конца забега и возвращает в меню.
func (g *Game) Retry() error {
	if g.Phase() != component.GameOverPhase {
		return nil
	}
	g.logger.Info("retry requested")
	return g.newSession()
}

// Shutdown сохраняет прогресс перед выходом.
func (g *Game) Shutdown() error {
	if err := g.save(); err != nil {
		return err
	}
	g.logger.Info("progress saved on exit", zap.Int("total_coins", g.totalCoins))
	return nil
}

// CollectCoin зачисляет монету и сразу сохраняет прогресс.
func (g *Game) CollectCoin(value int) error {
	g.coinCount += value
	g.totalCoins += value
	if err := g.save(); err != nil {
		return err
	}
	g.EventDispatcher.Emit(event.CoinCollected, event.CoinCollectedData{
		Value:      value,
		RunCoins:   g.coinCount,
		TotalCoins: g.totalCoins,
	})
	return nil
}

func (g *Game) save() error {
	if err := g.opts.Store.Save(g.opts.PlayerID, persist.Snapshot(g.totalCoins, g.Catalogue)); err != nil {
		g.logger.Error("failed to save progress", zap.Error(err))
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// Update продвигает игру на один кадр. Ошибка означает сбой сохранения
// и должна завершать процесс.
func (g *Game) Update(keys input.State, deltaTime float64) error {
	switch g.Phase() {
	case component.MenuPhase:
		g.Shop.Update(deltaTime)
	case component.RunningPhase:
		return g.tick(keys, deltaTime)
	}
	return nil
}

func (g *Game) tick(keys input.State, dt float64) error {
	p := g.World.Player

	g.PlayerSystem.Update(keys, dt)
	if keys.Pressed(input.Activate) {
		g.ActivateSkill()
	}

	if g.CombatSystem.Update() {
		g.logger.Info("player died from enemy contact")
		g.StateSystem.SwitchToGameOver(false)
		return nil
	}

	g.CameraOffset = system.CameraOffset(p.Rect.Center(),
		g.Grid.PixelWidth(), g.Grid.PixelHeight(), g.screenW, g.screenH)

	g.MovementSystem.Update(dt)
	g.BubbleSystem.Update(dt)

	if err := g.CoinSystem.Update(); err != nil {
		return err
	}
	g.TreasureSystem.Update()

	g.CoinSystem.ApplyMagnet(p.MagnetActive)
	if err := g.CoinSystem.CollectOverlapping(); err != nil {
		return err
	}

	if !g.OxygenSystem.Update(dt) {
		g.logger.Info("player ran out of oxygen")
		g.StateSystem.SwitchToGameOver(false)
		return nil
	}

	g.TreasureSystem.TriggerOverlapping()
	g.collectedTreasures = g.World.CollectedTreasures()

	if g.collectedTreasures >= config.TreasureCount && p.Rect.Overlaps(g.World.Submarine.Rect) {
		g.StateSystem.SwitchToGameOver(true)
	}
	return nil
}

// ActivateSkill запускает первый купленный активный навык.
func (g *Game) ActivateSkill() bool {
	sk, ok := g.Catalogue.FirstActive()
	if !ok || !sk.Activate(g.World.Player) {
		return false
	}
	g.EventDispatcher.Emit(event.SkillActivated, sk.ID())
	return true
}

// GameEventListener пишет в лог заметные игровые события.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.TreasureCollected:
		l.game.logger.Info("treasure collected", zap.Any("treasure", e.Data))
	case event.SkillActivated:
		l.game.logger.Info("skill activated", zap.Any("skill", e.Data))
	}
}
