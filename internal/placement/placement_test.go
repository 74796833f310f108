package placement

import (
	"errors"
	"testing"

	"github.com/calderforge/runeward/internal/grid"
	"github.com/calderforge/runeward/internal/mapgen"
	"github.com/calderforge/runeward/internal/rng"
)

func standardSpec() Spec {
	return Spec{Pickups: 6, Runes: 3, Enemies: 3, AltarBand: 3}
}

// episode reproduces the engine's draw sequence: one stream feeds the
// generator and then the placement.
func episode(t *testing.T, seed int64) (*grid.Grid, Layout) {
	t.Helper()
	stream := rng.New(seed)
	g, err := mapgen.Generate(30, 20, stream, mapgen.DefaultParams())
	if err != nil {
		t.Fatalf("seed %d: generate: %v", seed, err)
	}
	layout, err := Place(g, stream, standardSpec())
	if err != nil {
		t.Fatalf("seed %d: place: %v", seed, err)
	}
	return g, layout
}

func TestPlaceDeterministic(t *testing.T) {
	for _, seed := range []int64{1, 42, 4242} {
		_, a := episode(t, seed)
		_, b := episode(t, seed)
		if a.Player != b.Player || a.Altar != b.Altar {
			t.Fatalf("seed %d: player/altar diverged", seed)
		}
		if len(a.Pickups) != len(b.Pickups) || len(a.Enemies) != len(b.Enemies) {
			t.Fatalf("seed %d: cardinality diverged", seed)
		}
		for i := range a.Pickups {
			if a.Pickups[i] != b.Pickups[i] {
				t.Fatalf("seed %d: pickup %d diverged", seed, i)
			}
		}
		for i := range a.Enemies {
			if a.Enemies[i] != b.Enemies[i] {
				t.Fatalf("seed %d: enemy %d diverged", seed, i)
			}
		}
		for p := range a.Runes {
			if !b.Runes[p] {
				t.Fatalf("seed %d: rune flags diverged at %v", seed, p)
			}
		}
	}
}

func TestAllPositionsDisjointAndOnFloor(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		g, layout := episode(t, seed)
		all := []grid.Point{layout.Player, layout.Altar}
		all = append(all, layout.Pickups...)
		all = append(all, layout.Enemies...)
		seen := make(map[grid.Point]bool)
		for _, p := range all {
			if !g.IsFloor(p) {
				t.Errorf("seed %d: %v seated on non-floor", seed, p)
			}
			if seen[p] {
				t.Errorf("seed %d: %v seated twice", seed, p)
			}
			seen[p] = true
		}
	}
}

func TestAltarInBorderBand(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		g, layout := episode(t, seed)
		if !inBand(g, layout.Altar, standardSpec().AltarBand) {
			t.Errorf("seed %d: altar %v outside the border band", seed, layout.Altar)
		}
	}
}

func TestRuneFlags(t *testing.T) {
	for seed := int64(0); seed < 30; seed++ {
		_, layout := episode(t, seed)
		if len(layout.Runes) != standardSpec().Runes {
			t.Fatalf("seed %d: %d rune flags, want %d", seed, len(layout.Runes), standardSpec().Runes)
		}
		isPickup := make(map[grid.Point]bool)
		for _, p := range layout.Pickups {
			isPickup[p] = true
		}
		for p := range layout.Runes {
			if !isPickup[p] {
				t.Errorf("seed %d: rune flag %v is not a pickup", seed, p)
			}
		}
	}
}

func TestInsufficientFloor(t *testing.T) {
	g := grid.New(10, 10)
	for x := 2; x < 7; x++ {
		g.Set(grid.Pt(x, 2), grid.Floor)
	}
	// 5 floor cells cannot seat player+altar+6 pickups+3 enemies
	_, err := Place(g, rng.New(1), standardSpec())
	if !errors.Is(err, ErrInsufficientSpace) {
		t.Fatalf("expected ErrInsufficientSpace, got %v", err)
	}
}

func TestEmptyAltarBand(t *testing.T) {
	g := grid.New(12, 12)
	for y := 4; y <= 7; y++ {
		for x := 4; x <= 7; x++ {
			g.Set(grid.Pt(x, y), grid.Floor)
		}
	}
	// every floor cell sits in the interior, outside the band of 3
	_, err := Place(g, rng.New(1), Spec{Pickups: 2, Runes: 1, Enemies: 1, AltarBand: 3})
	if !errors.Is(err, ErrInsufficientSpace) {
		t.Fatalf("expected ErrInsufficientSpace, got %v", err)
	}
}

func TestRunesExceedingPickups(t *testing.T) {
	g := grid.New(10, 10)
	for y := 1; y < 9; y++ {
		for x := 1; x < 9; x++ {
			g.Set(grid.Pt(x, y), grid.Floor)
		}
	}
	_, err := Place(g, rng.New(1), Spec{Pickups: 2, Runes: 3, Enemies: 0, AltarBand: 3})
	if !errors.Is(err, ErrInsufficientSpace) {
		t.Fatalf("expected ErrInsufficientSpace, got %v", err)
	}
}

func TestNegativeCountRejected(t *testing.T) {
	g := grid.New(10, 10)
	g.Set(grid.Pt(1, 1), grid.Floor)
	if _, err := Place(g, rng.New(1), Spec{Pickups: -1, AltarBand: 3}); err == nil {
		t.Error("expected an error for a negative count")
	}
}
