package app

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/defs"
	"deep-dive-dash/internal/input"
	"deep-dive-dash/internal/persist"
	"deep-dive-dash/internal/shop"
	"deep-dive-dash/internal/system"
	"deep-dive-dash/internal/types"
	"deep-dive-dash/pkg/geom"
	"deep-dive-dash/pkg/tilemap"
)

type memStore struct {
	progress persist.Progress
	saves    int
	err      error
}

func (m *memStore) Load(string) (persist.Progress, error) {
	return m.progress, nil
}

func (m *memStore) Save(_ string, p persist.Progress) error {
	if m.err != nil {
		return m.err
	}
	m.saves++
	m.progress = p
	return nil
}

var testSprites = component.StaticSprites{
	component.PlayerSprite(component.PlayerIdle): {Frames: 4, Width: 32, Height: 32},
	component.SubmarineSprite:                    {Frames: 1, Width: 200, Height: 100},
}

func openGrid() (*tilemap.TileMap, error) {
	data := make([][]int, 20)
	for r := range data {
		data[r] = make([]int, 30)
		for c := range data[r] {
			data[r][c] = -1
		}
	}
	return tilemap.New(data, 64)
}

// newTestGame создаёт игру и убирает со сцены всё, кроме игрока и подлодки
func newTestGame(t *testing.T, store *memStore) *Game {
	t.Helper()
	c, err := defs.Default()
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGame(zap.NewNop(), Options{
		PlayerID:  "diver",
		Seed:      1,
		Catalogue: c,
		Sprites:   testSprites,
		Store:     store,
		LoadGrid:  openGrid,
	})
	if err != nil {
		t.Fatalf("new game: %v", err)
	}
	g.World.Enemies = map[types.EntityID]*component.Enemy{}
	g.World.Coins = map[types.EntityID]*component.Coin{}
	g.World.Treasures = map[types.EntityID]*component.Treasure{}
	return g
}

func (g *Game) addEnemyOnPlayer() {
	id := g.World.NewEntity()
	g.World.Enemies[id] = &component.Enemy{
		Body:      component.Body{Rect: g.World.Player.Rect},
		Direction: 1,
		Damage:    20,
	}
}

func (g *Game) addCoinAt(c geom.Vec, value int) types.EntityID {
	id := g.World.NewEntity()
	g.World.Coins[id] = &component.Coin{
		Body:  component.Body{Rect: geom.RectFromCenter(c, 16, 16)},
		Value: value,
	}
	return id
}

func TestNewGameStartsInMenu(t *testing.T) {
	g := newTestGame(t, &memStore{})
	if g.Phase() != component.MenuPhase {
		t.Errorf("expected menu phase, got %v", g.Phase())
	}
	if g.RunID == "" {
		t.Error("expected a run id")
	}
	if err := g.Update(input.Keys(input.Right), 1.0/60); err != nil {
		t.Fatal(err)
	}
	if g.World.Player.Velocity.Len() != 0 {
		t.Error("player must not move in the menu")
	}
}

func TestStartRunResetsCounters(t *testing.T) {
	g := newTestGame(t, &memStore{})
	g.World.Player.Oxygen = 10
	g.coinCount = 7
	g.StartRun()
	if g.Phase() != component.RunningPhase {
		t.Fatalf("expected running phase, got %v", g.Phase())
	}
	if g.World.Player.Oxygen != 100 || g.RunCoins() != 0 || g.CollectedTreasures() != 0 {
		t.Errorf("expected reset run state, got oxygen=%v coins=%d", g.World.Player.Oxygen, g.RunCoins())
	}
}

// Сценарий A: два удара по 20, неуязвимость гасит урон в своём окне
func TestContactDamageWithInvincibility(t *testing.T) {
	g := newTestGame(t, &memStore{})
	g.addEnemyOnPlayer()
	g.StartRun()
	p := g.World.Player

	for i, want := range []float64{80, 80, 60} {
		if err := g.Update(0, 1.0); err != nil {
			t.Fatal(err)
		}
		if p.Health != want {
			t.Errorf("tick %d: expected health %v, got %v", i, want, p.Health)
		}
	}
	if !p.Invincible || g.Phase() != component.RunningPhase {
		t.Errorf("expected invincible survivor, got invincible=%v phase=%v", p.Invincible, g.Phase())
	}
}

func TestDeathShortCircuitsTick(t *testing.T) {
	g := newTestGame(t, &memStore{})
	g.addEnemyOnPlayer()
	g.StartRun()
	p := g.World.Player
	p.Health = 20

	if err := g.Update(0, 1.0); err != nil {
		t.Fatal(err)
	}
	if g.Phase() != component.GameOverPhase || g.Win() {
		t.Fatalf("expected loss, got %v win=%v", g.Phase(), g.Win())
	}
	if p.Oxygen != 100 {
		t.Errorf("oxygen must not decay after death in the same tick, got %v", p.Oxygen)
	}
}

// Сценарий B: монета 5 зачисляется в оба счёта и сохраняется один раз
func TestCoinPickupCreditsAndSaves(t *testing.T) {
	store := &memStore{progress: persist.Progress{Coins: 10}}
	g := newTestGame(t, store)
	id := g.addCoinAt(g.World.Player.Rect.Center(), 5)
	g.StartRun()

	if err := g.Update(0, 1.0/60); err != nil {
		t.Fatal(err)
	}
	if _, ok := g.World.Coins[id]; ok {
		t.Error("expected coin removed")
	}
	if g.RunCoins() != 5 || g.TotalCoins() != 15 {
		t.Errorf("expected 5 run coins and 15 total, got %d and %d", g.RunCoins(), g.TotalCoins())
	}
	if store.saves != 1 || store.progress.Coins != 15 {
		t.Errorf("expected one save with 15 coins, got %d saves %+v", store.saves, store.progress)
	}
}

func TestSaveFailureStopsTheGame(t *testing.T) {
	store := &memStore{}
	g := newTestGame(t, store)
	g.addCoinAt(g.World.Player.Rect.Center(), 1)
	g.StartRun()
	store.err = errors.New("read-only file system")

	if err := g.Update(0, 1.0/60); err == nil {
		t.Error("expected save error to propagate")
	}
}

// Сценарий C: без трёх сокровищ подлодка не засчитывается
func TestWinNeedsAllTreasures(t *testing.T) {
	g := newTestGame(t, &memStore{})
	var treasures []*component.Treasure
	for i := 0; i < 3; i++ {
		tr := &component.Treasure{
			Body:   component.Body{Rect: geom.Rect{X: 100 + float64(i)*150, Y: 900, W: 96, H: 64}},
			Frames: 10,
			Speed:  0.1,
		}
		g.World.Treasures[g.World.NewEntity()] = tr
		treasures = append(treasures, tr)
	}
	treasures[0].Collected = true
	treasures[1].Collected = true

	g.StartRun()
	sub := g.World.Submarine.Rect
	p := g.World.Player
	p.Rect = p.Rect.Moved(sub.X+10, sub.Y+10)

	if err := g.Update(0, 1.0/60); err != nil {
		t.Fatal(err)
	}
	if g.Phase() != component.RunningPhase || g.CollectedTreasures() != 2 {
		t.Fatalf("expected running with 2 treasures, got %v and %d", g.Phase(), g.CollectedTreasures())
	}

	treasures[2].Collected = true
	if err := g.Update(0, 1.0/60); err != nil {
		t.Fatal(err)
	}
	if g.Phase() != component.GameOverPhase || !g.Win() {
		t.Errorf("expected win, got %v win=%v", g.Phase(), g.Win())
	}
}

// Сценарий D: 0.1 кислорода и секунда расхода по 5 в секунду
func TestOxygenRunsOut(t *testing.T) {
	g := newTestGame(t, &memStore{})
	g.StartRun()
	g.World.Player.Oxygen = 0.1

	if err := g.Update(0, 1.0); err != nil {
		t.Fatal(err)
	}
	if g.World.Player.Oxygen != 0 {
		t.Errorf("expected oxygen clamped to 0, got %v", g.World.Player.Oxygen)
	}
	if g.Phase() != component.GameOverPhase || g.Win() {
		t.Errorf("expected loss, got %v win=%v", g.Phase(), g.Win())
	}
}

// Сценарий E: 20 монет, навык за 30
func TestPurchaseRejectedWithoutCoins(t *testing.T) {
	store := &memStore{progress: persist.Progress{Coins: 20}}
	g := newTestGame(t, store)

	if err := g.Shop.Select("extra_health"); err != nil {
		t.Fatal(err)
	}
	if err := g.Shop.Confirm(); !errors.Is(err, shop.ErrNotEnoughCoins) {
		t.Fatalf("expected ErrNotEnoughCoins, got %v", err)
	}
	sk, _ := g.Catalogue.Get("extra_health")
	if g.TotalCoins() != 20 || sk.Purchased || store.saves != 0 || g.World.Player.HealthMax.Value != 100 {
		t.Error("expected no state mutated")
	}
	if g.Shop.Notice() != shop.NoticeNotEnoughCoins {
		t.Errorf("expected not-enough-coins notice, got %v", g.Shop.Notice())
	}

	// Уведомление гаснет через 2 секунды в меню
	for i := 0; i < 3; i++ {
		if err := g.Update(0, 1.0); err != nil {
			t.Fatal(err)
		}
	}
	if g.Shop.Notice() != shop.NoticeNone {
		t.Error("expected notice dismissed")
	}
}

func TestPurchaseIsVisibleToPlayer(t *testing.T) {
	store := &memStore{progress: persist.Progress{Coins: 100}}
	g := newTestGame(t, store)

	if err := g.Shop.Select("extra_health"); err != nil {
		t.Fatal(err)
	}
	if err := g.Shop.Confirm(); err != nil {
		t.Fatal(err)
	}
	if g.TotalCoins() != 70 || g.World.Player.HealthMax.Value != 120 {
		t.Errorf("expected 70 coins and 120 max health, got %d and %v", g.TotalCoins(), g.World.Player.HealthMax.Value)
	}
	if store.progress.PurchasedSkills[0] != "Extra Health" {
		t.Errorf("unexpected save: %+v", store.progress)
	}
}

func TestPurchasedHealthCarriesIntoRun(t *testing.T) {
	store := &memStore{progress: persist.Progress{Coins: 100}}
	g := newTestGame(t, store)

	if err := g.Shop.Select("extra_health"); err != nil {
		t.Fatal(err)
	}
	if err := g.Shop.Confirm(); err != nil {
		t.Fatal(err)
	}
	g.StartRun()
	p := g.World.Player
	if p.Health != 120 || p.HealthMax.Value != 120 {
		t.Errorf("expected run to start at 120/120, got %v/%v", p.Health, p.HealthMax.Value)
	}
}

func TestOwnedSkillsAppliedAtSessionStart(t *testing.T) {
	store := &memStore{progress: persist.Progress{Coins: 3, PurchasedSkills: []string{"Extra Health", "Swim Faster"}}}
	g := newTestGame(t, store)
	p := g.World.Player
	if p.HealthMax.Value != 120 || p.Health != 120 || p.SwimSpeed.Value != 5 {
		t.Errorf("expected boosted stats, got %v/%v speed %v", p.Health, p.HealthMax.Value, p.SwimSpeed.Value)
	}
	if g.TotalCoins() != 3 {
		t.Errorf("expected 3 coins loaded, got %d", g.TotalCoins())
	}
}

func TestMagnetActivationPullsCoins(t *testing.T) {
	store := &memStore{progress: persist.Progress{PurchasedSkills: []string{"Coin Magnet"}}}
	g := newTestGame(t, store)
	center := g.World.Player.Rect.Center()
	id := g.addCoinAt(geom.Vec{X: center.X + 100, Y: center.Y}, 1)
	g.StartRun()

	if err := g.Update(input.Keys(input.Activate), 1.0/60); err != nil {
		t.Fatal(err)
	}
	if !g.World.Player.MagnetActive || !g.World.Coins[id].Magnetized {
		t.Fatal("expected magnet active after activation")
	}
	if err := g.Update(0, 1.0/60); err != nil {
		t.Fatal(err)
	}
	if got := g.World.Coins[id].Rect.Center().X - center.X; got != 92 {
		t.Errorf("expected coin 92px away, got %v", got)
	}
	if g.ActivateSkill() {
		t.Error("expected second activation to be rejected while active")
	}
}

func TestRetryRebuildsSession(t *testing.T) {
	store := &memStore{}
	g := newTestGame(t, store)
	g.addCoinAt(g.World.Player.Rect.Center(), 5)
	g.StartRun()
	if err := g.Update(0, 1.0/60); err != nil {
		t.Fatal(err)
	}
	g.World.Player.Oxygen = 0
	if err := g.Update(0, 1.0/60); err != nil {
		t.Fatal(err)
	}
	if g.Phase() != component.GameOverPhase {
		t.Fatalf("expected game over, got %v", g.Phase())
	}

	oldRun, oldWorld := g.RunID, g.World
	if err := g.Retry(); err != nil {
		t.Fatal(err)
	}
	if g.Phase() != component.MenuPhase || g.RunID == oldRun || g.World == oldWorld {
		t.Error("expected a fresh session in the menu")
	}
	if g.TotalCoins() != 5 || g.RunCoins() != 0 {
		t.Errorf("expected 5 total coins reloaded, got %d (run %d)", g.TotalCoins(), g.RunCoins())
	}
	if len(g.World.Treasures) != 3 || g.World.Submarine == nil {
		t.Error("expected the level to be regenerated")
	}
}

func TestFailedRetryKeepsPreviousSession(t *testing.T) {
	g := newTestGame(t, &memStore{})
	g.StartRun()
	g.World.Player.Oxygen = 0
	if err := g.Update(0, 1.0/60); err != nil {
		t.Fatal(err)
	}

	// Сплошная карта: сокровищам некуда встать
	g.opts.LoadGrid = func() (*tilemap.TileMap, error) {
		return tilemap.New([][]int{{0, 0, 0}, {0, 0, 0}}, 640)
	}
	oldRun, oldWorld, oldCatalogue, oldShop := g.RunID, g.World, g.Catalogue, g.Shop
	err := g.Retry()
	if !errors.Is(err, system.ErrPlacementExhausted) {
		t.Fatalf("expected placement error, got %v", err)
	}
	if g.RunID != oldRun || g.World != oldWorld || g.Catalogue != oldCatalogue || g.Shop != oldShop {
		t.Error("expected the previous session to stay in place")
	}
	if g.Phase() != component.GameOverPhase {
		t.Errorf("expected to stay in game over, got %v", g.Phase())
	}
}

func TestShutdownSaves(t *testing.T) {
	store := &memStore{progress: persist.Progress{Coins: 8}}
	g := newTestGame(t, store)
	if err := g.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if store.saves != 1 || store.progress.Coins != 8 {
		t.Errorf("expected final save with 8 coins, got %d saves %+v", store.saves, store.progress)
	}
}
