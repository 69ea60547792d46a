// Package core provides the grid model shared by the board and the players:
// coordinates, orientations, neighbourhoods and the rule-error taxonomy.
// It contains no external dependencies to keep game logic pure and testable.
package core

import (
	"fmt"
	"strings"
)

// Orientation is the placement axis of a ship.
// Horizontal ships keep their column letter and advance along the row number
// (a2, a3, a4); vertical ships keep the row and advance the letter (a2, b2, c2).
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the canonical name of the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// ParseOrientation accepts any text whose first letter is 'h' or 'v'
// ("h", "horizontal", "V", ...).
func ParseOrientation(s string) (Orientation, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Horizontal, NewRuleError(KindInvalidOrientation, "", "orientation is empty")
	}
	switch s[0] {
	case 'h':
		return Horizontal, nil
	case 'v':
		return Vertical, nil
	default:
		return Horizontal, NewRuleError(KindInvalidOrientation, "",
			fmt.Sprintf("orientation %q must start with 'h' or 'v'", s))
	}
}

// MarshalText implements encoding.TextMarshaler so orientations read well in YAML.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Delta returns the (dcol, drow) step along the orientation's axis.
func (o Orientation) Delta() (int, int) {
	if o == Vertical {
		return 1, 0
	}
	return 0, 1
}

// Span returns the length-long contiguous run of coordinates beginning at start.
// The result is not bounds-checked.
func Span(start Coord, length int, o Orientation) []Coord {
	if length <= 0 {
		return nil
	}
	dcol, drow := o.Delta()
	coords := make([]Coord, length)
	for i := range coords {
		coords[i] = start.Add(i*dcol, i*drow)
	}
	return coords
}

// Neighbors returns the in-bounds cells directly left, right, above and below c,
// in that order.
func (c Coord) Neighbors() []Coord {
	candidates := [4]Coord{
		c.Add(0, -1),
		c.Add(0, 1),
		c.Add(-1, 0),
		c.Add(1, 0),
	}

	out := make([]Coord, 0, 4)
	for _, n := range candidates {
		if n.InBounds() {
			out = append(out, n)
		}
	}
	return out
}

// Ring returns the adjacency-exclusion zone of a ship footprint: both end caps
// along its axis plus the full band one cell wide on either side, corners included.
// coords must be ordered from the ship's start to its end.
func Ring(coords []Coord, o Orientation) []Coord {
	if len(coords) == 0 {
		return nil
	}

	start := coords[0]
	end := coords[len(coords)-1]
	ring := make([]Coord, 0, 2*len(coords)+6)

	if o == Vertical {
		ring = append(ring, start.Add(-1, 0), end.Add(1, 0))
		for col := int(start.Col) - 1; col <= int(end.Col)+1; col++ {
			ring = append(ring, C(byte(col), start.Row-1), C(byte(col), start.Row+1))
		}
	} else {
		ring = append(ring, start.Add(0, -1), end.Add(0, 1))
		for row := start.Row - 1; row <= end.Row+1; row++ {
			ring = append(ring, C(start.Col-1, row), C(start.Col+1, row))
		}
	}

	out := ring[:0]
	for _, c := range ring {
		if c.InBounds() {
			out = append(out, c)
		}
	}
	return out
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
