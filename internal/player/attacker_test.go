package player

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

func TestAttackerHitAndMiss(t *testing.T) {
	enemy := board.New()
	if err := enemy.PlaceShip("a1", 2, core.Horizontal); err != nil {
		t.Fatal(err)
	}
	p := NewAttacker("player1", enemy)

	tests := []struct {
		index   string
		hit     bool
		sunk    bool
		message string
	}{
		{"c3", false, false, "player1 attacked at c3"},
		{"a1", true, false, "player1 attacked at a1"},
		{"a2", true, true, "player1 attacked at a2"},
	}

	for _, tc := range tests {
		res, err := p.Attack(tc.index)
		if err != nil {
			t.Fatalf("Attack(%s) failed: %v", tc.index, err)
		}
		if res.IsHit != tc.hit || res.Sunk != tc.sunk {
			t.Errorf("Attack(%s) = hit %v sunk %v, expected hit %v sunk %v",
				tc.index, res.IsHit, res.Sunk, tc.hit, tc.sunk)
		}
		if res.Message != tc.message {
			t.Errorf("Attack(%s) message = %q, expected %q", tc.index, res.Message, tc.message)
		}
	}

	if !enemy.AreAllShipsSunk() {
		t.Error("expected the enemy fleet to be sunk")
	}
}

func TestAttackerPropagatesBoardErrors(t *testing.T) {
	p := NewAttacker("player1", board.New())

	if _, err := p.Attack("k1"); !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("expected OutOfBounds, got %v", err)
	}

	if _, err := p.Attack("b2"); err != nil {
		t.Fatal(err)
	}
	if _, err := p.Attack("b2"); !errors.Is(err, core.ErrRepeatAttack) {
		t.Errorf("expected RepeatAttack, got %v", err)
	}
}
