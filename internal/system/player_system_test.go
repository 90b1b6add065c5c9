package system

import (
	"math"
	"testing"

	"go.uber.org/zap"

	"deep-dive-dash/internal/component"
	"deep-dive-dash/internal/defs"
	"deep-dive-dash/internal/entity"
	"deep-dive-dash/internal/input"
	"deep-dive-dash/internal/skill"
	"deep-dive-dash/pkg/tilemap"
)

func newTestPlayerSystem(t *testing.T, grid *tilemap.TileMap) (*PlayerSystem, *entity.World, *skill.Catalogue) {
	t.Helper()
	c, err := defs.Default()
	if err != nil {
		t.Fatal(err)
	}
	cat := skill.NewCatalogue(c.Skills)
	w := newTestWorld()
	return NewPlayerSystem(zap.NewNop(), w, grid, cat, nil), w, cat
}

func TestDiagonalMovementKeepsSpeed(t *testing.T) {
	ps, w, _ := newTestPlayerSystem(t, openGrid(t, 20, 12))
	start := w.Player.Rect

	ps.Update(input.Keys(input.Right, input.Down), 1.0/60)
	if v := w.Player.Velocity.Len(); math.Abs(v-4) > 1e-9 {
		t.Errorf("expected speed 4, got %v", v)
	}
	moved := math.Hypot(w.Player.Rect.X-start.X, w.Player.Rect.Y-start.Y)
	if math.Abs(moved-4) > 1e-9 {
		t.Errorf("expected to move 4px, moved %v", moved)
	}
	if w.Player.Anim.Set != component.PlayerSwimming || w.Player.Anim.Index != 0 {
		t.Errorf("expected swimming animation from frame 0, got %+v", w.Player.Anim)
	}

	ps.Update(input.Keys(input.Left, input.Right), 1.0/60)
	if w.Player.Velocity.Len() != 0 || w.Player.Anim.Set != component.PlayerIdle {
		t.Error("expected opposite keys to cancel out and switch to idle")
	}
}

func TestMoveRejectedOnCollision(t *testing.T) {
	// Стена в колонке 7, строке 4: x 448..512, y 256..320
	ps, w, _ := newTestPlayerSystem(t, openGrid(t, 20, 12, [2]int{7, 4}))
	w.Player.Rect.X = 416 // правый край ровно на границе стены
	before := w.Player.Rect

	ps.Update(input.Keys(input.Right), 1.0/60)
	if w.Player.Rect != before {
		t.Errorf("expected move to be rejected, got %+v", w.Player.Rect)
	}
	ps.Update(input.Keys(input.Left), 1.0/60)
	if w.Player.Rect.X != 412 {
		t.Errorf("expected to move away from the wall, got x=%v", w.Player.Rect.X)
	}
}

func TestMoveClampedToWorld(t *testing.T) {
	ps, w, _ := newTestPlayerSystem(t, openGrid(t, 20, 12))
	w.Player.Rect.X, w.Player.Rect.Y = 1, 1
	ps.Update(input.Keys(input.Left, input.Up), 1.0/60)
	if w.Player.Rect.X != 0 || w.Player.Rect.Y != 0 {
		t.Errorf("expected clamp to (0,0), got (%v,%v)", w.Player.Rect.X, w.Player.Rect.Y)
	}
}

func TestDamageAndInvincibility(t *testing.T) {
	ps, w, _ := newTestPlayerSystem(t, openGrid(t, 20, 12))
	p := w.Player

	if ps.TakeDamage(20) {
		t.Fatal("player must survive the first hit")
	}
	if p.Health != 80 || !p.Invincible {
		t.Errorf("expected 80 health and invincibility, got %v %v", p.Health, p.Invincible)
	}
	ps.TakeDamage(20)
	if p.Health != 80 {
		t.Errorf("expected invincibility to block damage, got %v", p.Health)
	}

	ps.Update(0, 2.0)
	if p.Invincible {
		t.Fatal("expected invincibility to wear off")
	}
	ps.TakeDamage(20)
	if p.Health != 60 {
		t.Errorf("expected 60 health, got %v", p.Health)
	}

	p.Invincible = false
	if !ps.TakeDamage(500) || p.Health != 0 {
		t.Errorf("expected death with health clamped to 0, got %v", p.Health)
	}
}

func TestShieldBlocksAndRecharges(t *testing.T) {
	ps, w, cat := newTestPlayerSystem(t, openGrid(t, 20, 12))
	p := w.Player
	shield, _ := cat.Get("invincibility_shield")
	shield.Unlock(p)

	if ps.TakeDamage(20) {
		t.Fatal("shield must prevent death")
	}
	if p.Health != 100 || p.ShieldCharges != 2 || !p.Invincible {
		t.Errorf("expected blocked hit, got health=%v charges=%d", p.Health, p.ShieldCharges)
	}

	ps.Update(0, 2.0) // неуязвимость кончилась, подзарядка пошла в том же тике
	ps.Update(0, 7.9)
	if p.ShieldCharges != 2 {
		t.Errorf("expected no recharge yet, got %d", p.ShieldCharges)
	}
	ps.Update(0, 0.2)
	if p.ShieldCharges != 3 || p.ShieldRechargeTimer != 0 {
		t.Errorf("expected full charges, got %d (timer %v)", p.ShieldCharges, p.ShieldRechargeTimer)
	}
}

func TestDerivedMultipliersFollowCatalogue(t *testing.T) {
	ps, w, cat := newTestPlayerSystem(t, openGrid(t, 20, 12))
	p := w.Player
	oxygen, _ := cat.Get("oxygen_reduction")
	light, _ := cat.Get("flashlight_boost")
	oxygen.Purchased = true
	light.Purchased = true

	ps.Update(0, 1.0/60)
	if p.OxygenMultiplier != 0.5 || p.FlashlightMultiplier != 1.5 {
		t.Errorf("expected 0.5 and 1.5, got %v and %v", p.OxygenMultiplier, p.FlashlightMultiplier)
	}
	if p.LightRadius() != 187.5 {
		t.Errorf("expected light radius 187.5, got %v", p.LightRadius())
	}

	oxygen.Purchased = false
	ps.Update(0, 1.0/60)
	if p.OxygenMultiplier != 1 {
		t.Errorf("expected multiplier reset next frame, got %v", p.OxygenMultiplier)
	}
}

func TestOxygenDepletion(t *testing.T) {
	ps, w, _ := newTestPlayerSystem(t, openGrid(t, 20, 12))
	oxygen := NewOxygenSystem(ps)
	w.Player.Oxygen = 0.1
	if oxygen.Update(1.0) {
		t.Error("expected oxygen to run out")
	}
	if w.Player.Oxygen != 0 {
		t.Errorf("expected oxygen clamped to 0, got %v", w.Player.Oxygen)
	}
	if pct := w.Player.OxygenPercent(); pct != 0 {
		t.Errorf("expected 0%%, got %v", pct)
	}
}

func TestApplyOwnedSkillsKeepsShare(t *testing.T) {
	ps, w, cat := newTestPlayerSystem(t, openGrid(t, 20, 12))
	p := w.Player
	health, _ := cat.Get("extra_health")
	health.Purchased = true
	magnet, _ := cat.Get("coin_magnet")
	magnet.Purchased = true
	p.Health = 50

	ps.ApplyOwnedSkills()
	if p.HealthMax.Value != 120 || p.Health != 60 {
		t.Errorf("expected 60/120, got %v/%v", p.Health, p.HealthMax.Value)
	}
	if p.Oxygen != 100 {
		t.Errorf("expected full oxygen, got %v", p.Oxygen)
	}
	if p.MagnetActive {
		t.Error("active skills must not be applied at session start")
	}
	if base := p.HealthMax.BaseValue(); base != 100 {
		t.Errorf("expected base 100 kept, got %v", base)
	}
}
