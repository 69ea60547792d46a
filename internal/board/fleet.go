package board

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// StandardFleet lists the ship lengths of a classic game.
var StandardFleet = []int{5, 4, 4, 3, 2}

// DefaultMaxAttempts bounds both per-ship retries and whole-fleet restarts in RandomFleet.
const DefaultMaxAttempts = 1000

// ErrFleetDoesNotFit is returned when RandomFleet gives up.
var ErrFleetDoesNotFit = errors.New("board: fleet could not be placed")

// Placement describes where one ship goes.
type Placement struct {
	Start       string           `yaml:"start"`
	Length      int              `yaml:"length"`
	Orientation core.Orientation `yaml:"orientation"`
}

// String returns a compact description such as "a1 5 horizontal".
func (p Placement) String() string {
	return fmt.Sprintf("%s %d %s", p.Start, p.Length, p.Orientation)
}

// PlaceFleet places ships in order and stops at the first rejected placement.
func (b *Gameboard) PlaceFleet(fleet []Placement) error {
	for i, p := range fleet {
		if err := b.PlaceShip(p.Start, p.Length, p.Orientation); err != nil {
			return fmt.Errorf("ship %d (%s): %w", i+1, p, err)
		}
	}
	return nil
}

// RandomFleet finds a legal placement for every length, in order. A length
// that cannot be placed within maxAttempts tries restarts the whole fleet;
// after maxAttempts restarts it returns ErrFleetDoesNotFit.
func RandomFleet(rng *rand.Rand, lengths []int, maxAttempts int) ([]Placement, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	for _, l := range lengths {
		if l <= 0 || l > core.GridSize {
			return nil, core.NewRuleError(core.KindInvalidShip, "",
				fmt.Sprintf("ship length %d does not fit a %dx%d grid", l, core.GridSize, core.GridSize))
		}
	}

	cells := core.AllCoords()
	for restart := 0; restart < maxAttempts; restart++ {
		scratch := New()
		fleet := make([]Placement, 0, len(lengths))

		for _, length := range lengths {
			placed := false
			for try := 0; try < maxAttempts && !placed; try++ {
				p := Placement{
					Start:       cells[rng.Intn(len(cells))].String(),
					Length:      length,
					Orientation: core.Orientation(rng.Intn(2)),
				}
				if scratch.PlaceShip(p.Start, p.Length, p.Orientation) == nil {
					fleet = append(fleet, p)
					placed = true
				}
			}
			if !placed {
				break
			}
		}

		if len(fleet) == len(lengths) {
			return fleet, nil
		}
	}

	return nil, ErrFleetDoesNotFit
}
