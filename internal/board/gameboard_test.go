package board

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

func equalIndices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPlaceShipIndices(t *testing.T) {
	tests := []struct {
		name  string
		start string
		len   int
		o     core.Orientation
		want  []string
	}{
		{"horizontal", "a2", 5, core.Horizontal, []string{"a2", "a3", "a4", "a5", "a6"}},
		{"vertical", "a2", 5, core.Vertical, []string{"a2", "b2", "c2", "d2", "e2"}},
		{"row ten edge", "j8", 3, core.Horizontal, []string{"j8", "j9", "j10"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New()
			if err := b.PlaceShip(tc.start, tc.len, tc.o); err != nil {
				t.Fatalf("PlaceShip() failed: %v", err)
			}
			state := b.ShipsState()
			if len(state) != 1 {
				t.Fatalf("expected 1 ship, got %d", len(state))
			}
			if !equalIndices(state[0].Indices, tc.want) {
				t.Errorf("indices = %v, expected %v", state[0].Indices, tc.want)
			}
			if state[0].Length != tc.len || state[0].Hits != 0 || state[0].Sunk {
				t.Errorf("unexpected ship state %+v", state[0])
			}
		})
	}
}

func TestPlaceShipRejections(t *testing.T) {
	type placement struct {
		start string
		len   int
		o     core.Orientation
	}
	tests := []struct {
		name     string
		existing []placement
		attempt  placement
		want     error
	}{
		{"extends past row ten", nil, placement{"a8", 5, core.Horizontal}, core.ErrOutOfBounds},
		{"extends past column j", nil, placement{"i8", 5, core.Vertical}, core.ErrOutOfBounds},
		{"start off the grid", nil, placement{"z1", 2, core.Horizontal}, core.ErrOutOfBounds},
		{"same start", []placement{{"a1", 5, core.Horizontal}}, placement{"a1", 5, core.Horizontal}, core.ErrOverlap},
		{"crossing", []placement{{"a1", 5, core.Horizontal}}, placement{"a1", 5, core.Vertical}, core.ErrOverlap},
		{"side by side", []placement{{"a1", 2, core.Horizontal}}, placement{"b1", 2, core.Horizontal}, core.ErrAdjacency},
		{"end to end", []placement{{"a1", 2, core.Horizontal}}, placement{"a3", 3, core.Vertical}, core.ErrAdjacency},
		{"diagonal touch", []placement{{"c3", 2, core.Horizontal}}, placement{"d5", 2, core.Vertical}, core.ErrAdjacency},
		{"bounds checked before overlap", []placement{{"a1", 5, core.Horizontal}}, placement{"a7", 5, core.Horizontal}, core.ErrOutOfBounds},
		{"zero length", nil, placement{"a1", 0, core.Horizontal}, core.ErrInvalidShip},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := New()
			for _, p := range tc.existing {
				if err := b.PlaceShip(p.start, p.len, p.o); err != nil {
					t.Fatalf("setup PlaceShip(%s) failed: %v", p.start, err)
				}
			}

			err := b.PlaceShip(tc.attempt.start, tc.attempt.len, tc.attempt.o)
			if !errors.Is(err, tc.want) {
				t.Fatalf("PlaceShip() error = %v, expected kind %v", err, core.KindOf(tc.want))
			}
			if len(b.ShipsState()) != len(tc.existing) {
				t.Errorf("rejected placement changed the fleet: %d ships", len(b.ShipsState()))
			}
		})
	}
}

func TestPlaceMultipleShips(t *testing.T) {
	b := New()
	fleet := []Placement{
		{Start: "a2", Length: 3, Orientation: core.Horizontal},
		{Start: "c5", Length: 4, Orientation: core.Vertical},
		{Start: "j8", Length: 3, Orientation: core.Horizontal},
	}
	if err := b.PlaceFleet(fleet); err != nil {
		t.Fatalf("PlaceFleet() failed: %v", err)
	}

	state := b.ShipsState()
	if len(state) != 3 {
		t.Fatalf("expected 3 ships, got %d", len(state))
	}
	if !equalIndices(state[1].Indices, []string{"c5", "d5", "e5", "f5"}) {
		t.Errorf("second ship indices = %v", state[1].Indices)
	}
}

func TestPlaceFleetStopsAtFirstFailure(t *testing.T) {
	b := New()
	fleet := []Placement{
		{Start: "a1", Length: 2, Orientation: core.Horizontal},
		{Start: "b1", Length: 2, Orientation: core.Horizontal},
		{Start: "j1", Length: 2, Orientation: core.Horizontal},
	}

	err := b.PlaceFleet(fleet)
	if !errors.Is(err, core.ErrAdjacency) {
		t.Fatalf("PlaceFleet() error = %v, expected adjacency violation", err)
	}
	if len(b.ShipsState()) != 1 {
		t.Errorf("expected only the first ship to be placed, got %d", len(b.ShipsState()))
	}
}

func TestReceiveAttack(t *testing.T) {
	t.Run("miss on empty board", func(t *testing.T) {
		b := New()
		if err := b.ReceiveAttack("a1"); err != nil {
			t.Fatalf("ReceiveAttack() failed: %v", err)
		}
		if !equalIndices(b.MissedAttacks(), []string{"a1"}) {
			t.Errorf("MissedAttacks() = %v", b.MissedAttacks())
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		b := New()
		err := b.ReceiveAttack("z9")
		if !errors.Is(err, core.ErrOutOfBounds) {
			t.Fatalf("expected OutOfBounds, got %v", err)
		}
		if len(b.ReceivedAttacks()) != 0 {
			t.Error("rejected attack should not be recorded")
		}
	})

	t.Run("hit registers on ship", func(t *testing.T) {
		b := New()
		if err := b.PlaceShip("a1", 5, core.Horizontal); err != nil {
			t.Fatal(err)
		}
		if err := b.ReceiveAttack("a1"); err != nil {
			t.Fatal(err)
		}
		if hits := b.ShipsState()[0].Hits; hits != 1 {
			t.Errorf("expected 1 hit, got %d", hits)
		}
		if len(b.MissedAttacks()) != 0 {
			t.Errorf("a hit must not be recorded as a miss: %v", b.MissedAttacks())
		}
	})

	t.Run("repeat attack", func(t *testing.T) {
		b := New()
		if err := b.ReceiveAttack("j10"); err != nil {
			t.Fatal(err)
		}
		err := b.ReceiveAttack("j10")
		if !errors.Is(err, core.ErrRepeatAttack) {
			t.Fatalf("expected RepeatAttack, got %v", err)
		}
		if len(b.ReceivedAttacks()) != 1 || len(b.MissedAttacks()) != 1 {
			t.Errorf("repeat attack changed history: received=%v missed=%v",
				b.ReceivedAttacks(), b.MissedAttacks())
		}
	})
}

func TestAreAllShipsSunk(t *testing.T) {
	b := New()
	if b.AreAllShipsSunk() {
		t.Error("empty fleet must not report sunk")
	}

	if err := b.PlaceShip("a1", 2, core.Vertical); err != nil {
		t.Fatal(err)
	}
	if b.AreAllShipsSunk() {
		t.Error("undamaged fleet reported sunk")
	}

	_ = b.ReceiveAttack("a1")
	if b.AreAllShipsSunk() {
		t.Error("half-damaged fleet reported sunk")
	}

	_ = b.ReceiveAttack("b1")
	if !b.AreAllShipsSunk() {
		t.Error("expected fleet to be sunk after a1 and b1")
	}
	if b.ShipsRemaining() != 0 {
		t.Errorf("ShipsRemaining() = %d, expected 0", b.ShipsRemaining())
	}
}

func TestAttackHistoryPartition(t *testing.T) {
	b := New()
	if err := b.PlaceShip("c3", 3, core.Vertical); err != nil {
		t.Fatal(err)
	}
	for _, idx := range []string{"c3", "a1", "d3", "j10", "e3"} {
		if err := b.ReceiveAttack(idx); err != nil {
			t.Fatalf("ReceiveAttack(%s) failed: %v", idx, err)
		}
	}

	hits := 0
	for _, s := range b.ShipsState() {
		hits += s.Hits
	}
	if hits+len(b.MissedAttacks()) != len(b.ReceivedAttacks()) {
		t.Errorf("hits (%d) + misses (%d) != received (%d)",
			hits, len(b.MissedAttacks()), len(b.ReceivedAttacks()))
	}
}

func TestShipsStateIsSnapshot(t *testing.T) {
	b := New()
	if err := b.PlaceShip("e5", 2, core.Horizontal); err != nil {
		t.Fatal(err)
	}
	snap := b.ShipsState()
	snap[0].Indices[0] = "zz"

	if b.ShipsState()[0].Indices[0] != "e5" {
		t.Error("mutating a snapshot leaked into the board")
	}
	if !snap[0].Covers("e6") || snap[0].Covers("e7") {
		t.Error("Covers() disagrees with indices")
	}
}

func TestRandomFleet(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		fleet, err := RandomFleet(rng, StandardFleet, DefaultMaxAttempts)
		if err != nil {
			t.Fatalf("RandomFleet() failed: %v", err)
		}
		if len(fleet) != len(StandardFleet) {
			t.Fatalf("expected %d placements, got %d", len(StandardFleet), len(fleet))
		}

		// Every generated fleet must be accepted by a fresh board
		b := New()
		if err := b.PlaceFleet(fleet); err != nil {
			t.Fatalf("generated fleet rejected: %v", err)
		}
	}
}

func TestRandomFleetDeterminism(t *testing.T) {
	f1, err1 := RandomFleet(rand.New(rand.NewSource(42)), StandardFleet, 0)
	f2, err2 := RandomFleet(rand.New(rand.NewSource(42)), StandardFleet, 0)
	if err1 != nil || err2 != nil {
		t.Fatalf("RandomFleet() failed: %v / %v", err1, err2)
	}
	for i := range f1 {
		if f1[i] != f2[i] {
			t.Errorf("placement %d differs: %v vs %v", i, f1[i], f2[i])
		}
	}
}

func TestRandomFleetRejectsImpossibleFleets(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	if _, err := RandomFleet(rng, []int{11}, 10); !errors.Is(err, core.ErrInvalidShip) {
		t.Errorf("expected InvalidShip for a length-11 ship, got %v", err)
	}

	// Twenty length-5 ships cannot fit with the adjacency rule
	crowded := make([]int, 20)
	for i := range crowded {
		crowded[i] = 5
	}
	if _, err := RandomFleet(rng, crowded, 5); !errors.Is(err, ErrFleetDoesNotFit) {
		t.Errorf("expected ErrFleetDoesNotFit, got %v", err)
	}
}
