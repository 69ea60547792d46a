package board

import "testing"

func TestShipHitAndSink(t *testing.T) {
	s := NewShip(3)

	if s.Length() != 3 {
		t.Fatalf("Length() = %d, expected 3", s.Length())
	}
	if s.Hits() != 0 || s.IsSunk() {
		t.Fatalf("new ship should be undamaged, got hits=%d sunk=%v", s.Hits(), s.IsSunk())
	}

	s.Hit()
	s.Hit()
	if s.IsSunk() {
		t.Error("ship with 2/3 hits should still float")
	}

	s.Hit()
	if !s.IsSunk() {
		t.Error("ship with 3/3 hits should be sunk")
	}

	// Over-hitting is harmless
	s.Hit()
	if s.Hits() != 4 || !s.IsSunk() {
		t.Errorf("expected 4 hits and sunk, got hits=%d sunk=%v", s.Hits(), s.IsSunk())
	}
}
