// Package board implements one fleet's side of a Battleship game: ship
// placement with its bounds, overlap and adjacency rules, and attack resolution.
package board

import (
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// placedShip is a Ship plus the ordered cells it occupies.
type placedShip struct {
	coords      []core.Coord
	orientation core.Orientation
	ship        *Ship
}

// ShipState is a read-only snapshot of one placed ship.
type ShipState struct {
	Indices     []string
	Orientation core.Orientation
	Length      int
	Hits        int
	Sunk        bool
}

// Covers reports whether the ship occupies index.
func (s ShipState) Covers(index string) bool {
	for _, i := range s.Indices {
		if i == index {
			return true
		}
	}
	return false
}

// Gameboard owns the ships and attack history of a single fleet.
// It is not safe for concurrent use; each game session owns its boards.
type Gameboard struct {
	ships    []placedShip
	occupied map[core.Coord]int // cell -> index into ships
	received map[core.Coord]bool
	attacks  []core.Coord
	missed   []core.Coord
}

// New creates an empty gameboard.
func New() *Gameboard {
	return &Gameboard{
		occupied: make(map[core.Coord]int),
		received: make(map[core.Coord]bool),
	}
}

// PlaceShip places a ship of the given length starting at start and extending
// along o. Checks run in order and the first failure wins: every cell in bounds,
// no cell already occupied, no occupied cell inside the new ship's ring.
func (b *Gameboard) PlaceShip(start string, length int, o core.Orientation) error {
	if length <= 0 {
		return core.NewRuleError(core.KindInvalidShip, start,
			fmt.Sprintf("ship length must be positive, got %d", length))
	}
	if o != core.Horizontal && o != core.Vertical {
		return core.NewRuleError(core.KindInvalidOrientation, start,
			fmt.Sprintf("unknown orientation %d", o))
	}

	origin, err := core.Decode(start)
	if err != nil {
		return core.NewRuleError(core.KindOutOfBounds, start, "ship extends the board bounds")
	}

	coords := core.Span(origin, length, o)
	for _, c := range coords {
		if !c.InBounds() {
			return core.NewRuleError(core.KindOutOfBounds, start, "ship extends the board bounds")
		}
	}

	for _, c := range coords {
		if _, taken := b.occupied[c]; taken {
			return core.NewRuleError(core.KindOverlap, c.String(), "ship cannot be placed over other ships")
		}
	}

	for _, c := range core.Ring(coords, o) {
		if _, taken := b.occupied[c]; taken {
			return core.NewRuleError(core.KindAdjacency, c.String(), "ship cannot be placed adjacent to other ships")
		}
	}

	b.ships = append(b.ships, placedShip{
		coords:      coords,
		orientation: o,
		ship:        NewShip(length),
	})
	for _, c := range coords {
		b.occupied[c] = len(b.ships) - 1
	}
	return nil
}

// ReceiveAttack resolves an attack at index. A ship on that cell takes a hit;
// otherwise the attack is recorded as a miss. Attacking outside the grid or
// attacking the same cell twice is rejected without changing any state.
func (b *Gameboard) ReceiveAttack(index string) error {
	target, err := core.Decode(index)
	if err != nil {
		return core.NewRuleError(core.KindOutOfBounds, index, "cannot attack an index that is out of bounds")
	}
	if b.received[target] {
		return core.NewRuleError(core.KindRepeatAttack, index, "index has already been attacked")
	}

	if i, ok := b.occupied[target]; ok {
		b.ships[i].ship.Hit()
	} else {
		b.missed = append(b.missed, target)
	}

	b.received[target] = true
	b.attacks = append(b.attacks, target)
	return nil
}

// ShipsState returns a snapshot of every placed ship in placement order.
func (b *Gameboard) ShipsState() []ShipState {
	out := make([]ShipState, len(b.ships))
	for i, p := range b.ships {
		out[i] = ShipState{
			Indices:     core.Indices(p.coords),
			Orientation: p.orientation,
			Length:      p.ship.Length(),
			Hits:        p.ship.Hits(),
			Sunk:        p.ship.IsSunk(),
		}
	}
	return out
}

// MissedAttacks returns the indices of attacks that hit water, oldest first.
func (b *Gameboard) MissedAttacks() []string {
	return core.Indices(b.missed)
}

// ReceivedAttacks returns every attacked index, oldest first.
func (b *Gameboard) ReceivedAttacks() []string {
	return core.Indices(b.attacks)
}

// AreAllShipsSunk is true once at least one ship is placed and every ship is sunk.
func (b *Gameboard) AreAllShipsSunk() bool {
	if len(b.ships) == 0 {
		return false
	}
	for _, p := range b.ships {
		if !p.ship.IsSunk() {
			return false
		}
	}
	return true
}

// ShipsRemaining returns the number of ships still afloat.
func (b *Gameboard) ShipsRemaining() int {
	n := 0
	for _, p := range b.ships {
		if !p.ship.IsSunk() {
			n++
		}
	}
	return n
}
