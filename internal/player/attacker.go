// Package player contains the two kinds of attacker that fire at an opposing
// board: a human proxy that is told where to shoot, and an automated opponent
// that chooses its own targets with a hunt/target search.
package player

import (
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/board"
)

// Target is the part of an opposing Gameboard an attacker needs.
type Target interface {
	ReceiveAttack(index string) error
	ShipsState() []board.ShipState
}

var _ Target = (*board.Gameboard)(nil)

// Result describes the outcome of one shot.
type Result struct {
	Index   string
	IsHit   bool
	Sunk    bool // the shot sank the ship it hit
	Message string
}

// Attacker fires at the indices it is given.
type Attacker struct {
	name  string
	enemy Target
}

// NewAttacker creates an attacker named name firing at enemy.
func NewAttacker(name string, enemy Target) *Attacker {
	return &Attacker{name: name, enemy: enemy}
}

// Attack fires at index. Board errors are returned unchanged.
func (a *Attacker) Attack(index string) (Result, error) {
	if err := a.enemy.ReceiveAttack(index); err != nil {
		return Result{}, err
	}

	res := Result{
		Index:   index,
		Message: fmt.Sprintf("%s attacked at %s", a.name, index),
	}
	if ship, ok := shipAt(a.enemy.ShipsState(), index); ok {
		res.IsHit = true
		res.Sunk = ship.Sunk
	}
	return res, nil
}

// shipAt finds the ship covering index.
func shipAt(ships []board.ShipState, index string) (board.ShipState, bool) {
	for _, s := range ships {
		if s.Covers(index) {
			return s, true
		}
	}
	return board.ShipState{}, false
}
