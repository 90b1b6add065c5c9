package utils

import (
	"testing"

	"deep-dive-dash/internal/defs"
)

func TestPercentClamped(t *testing.T) {
	cases := []struct{ value, max, want float64 }{
		{50, 100, 50}, {120, 100, 100}, {-5, 100, 0}, {10, 0, 0}, {60, 120, 50},
	}
	for _, c := range cases {
		if got := Percent(c.value, c.max); got != c.want {
			t.Errorf("Percent(%v,%v): expected %v, got %v", c.value, c.max, c.want, got)
		}
	}
}

func TestApproachFloorsAtZero(t *testing.T) {
	if got := Approach(0.5, 1); got != 0 {
		t.Errorf("expected 0, got %v", got)
	}
	if got := Approach(2, 0.5); got != 1.5 {
		t.Errorf("expected 1.5, got %v", got)
	}
}

func TestIntRangeInclusive(t *testing.T) {
	rng := NewPRNGService(7)
	seenLo, seenHi := false, false
	for i := 0; i < 1000; i++ {
		v := rng.IntRange(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("value %d outside [3,5]", v)
		}
		seenLo = seenLo || v == 3
		seenHi = seenHi || v == 5
	}
	if !seenLo || !seenHi {
		t.Error("expected both bounds to be reachable")
	}
	if rng.IntRange(9, 2) != 9 {
		t.Error("expected lo for an inverted range")
	}
}

func TestChooseCoinRespectsWeights(t *testing.T) {
	rng := NewPRNGService(1)
	entries := []defs.CoinDefinition{
		{ID: "gold", Value: 5, Weight: 0},
		{ID: "silver", Value: 1, Weight: 3},
	}
	for i := 0; i < 100; i++ {
		if got := rng.ChooseCoin(entries); got.ID != "silver" {
			t.Fatalf("zero-weight entry chosen: %+v", got)
		}
	}
	if got := rng.ChooseCoin(nil); got.ID != "" {
		t.Errorf("expected empty definition for empty table, got %+v", got)
	}
}

func TestSeededServicesAgree(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 20; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("expected identical sequences for identical seeds")
		}
	}
}
