package core

import (
	"fmt"
	"strconv"
)

// Grid dimensions. Columns are lettered a..j, rows numbered 1..10.
const (
	GridSize      = 10
	Cells         = GridSize * GridSize
	MinCol   byte = 'a'
	MaxCol   byte = 'a' + GridSize - 1
	MinRow        = 1
	MaxRow        = GridSize
)

// Coord addresses a single cell on the grid, e.g. "c5" is Col 'c', Row 5.
type Coord struct {
	Col byte
	Row int
}

// C is a convenience constructor for Coord.
func C(col byte, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String returns the index form of the coordinate ("a1", "j10").
func (c Coord) String() string {
	return Encode(c.Col, c.Row)
}

// Encode serializes a column and row into an index string.
// No validation is performed; pair with InBounds when the input is untrusted.
func Encode(col byte, row int) string {
	return string(rune(col)) + strconv.Itoa(row)
}

// Decode parses an index string. The accepted format is ^[a-j](10|[1-9])$;
// anything else is reported as an OutOfBounds rule error.
func Decode(index string) (Coord, error) {
	if len(index) < 2 || len(index) > 3 {
		return Coord{}, outOfBounds(index)
	}

	col := index[0]
	if col < MinCol || col > MaxCol {
		return Coord{}, outOfBounds(index)
	}

	var row int
	switch rest := index[1:]; {
	case rest == "10":
		row = 10
	case len(rest) == 1 && rest[0] >= '1' && rest[0] <= '9':
		row = int(rest[0] - '0')
	default:
		return Coord{}, outOfBounds(index)
	}

	return Coord{Col: col, Row: row}, nil
}

// MustDecode is like Decode but panics on malformed input.
// Intended for tests and static tables.
func MustDecode(index string) Coord {
	c, err := Decode(index)
	if err != nil {
		panic(err)
	}
	return c
}

// IsInBounds reports whether index is a valid grid address.
func IsInBounds(index string) bool {
	_, err := Decode(index)
	return err == nil
}

// InBounds returns true if the coordinate lies within the grid.
func (c Coord) InBounds() bool {
	return c.Col >= MinCol && c.Col <= MaxCol && c.Row >= MinRow && c.Row <= MaxRow
}

// Add returns a new Coord offset by dcol letters and drow rows.
func (c Coord) Add(dcol, drow int) Coord {
	return Coord{Col: byte(int(c.Col) + dcol), Row: c.Row + drow}
}

// Manhattan returns the Manhattan distance to another coordinate.
func (c Coord) Manhattan(other Coord) int {
	return Abs(int(c.Col)-int(other.Col)) + Abs(c.Row-other.Row)
}

// AllCoords returns every cell on the grid, a1..a10 then b1..b10 and so on.
func AllCoords() []Coord {
	coords := make([]Coord, 0, Cells)
	for col := MinCol; col <= MaxCol; col++ {
		for row := MinRow; row <= MaxRow; row++ {
			coords = append(coords, C(col, row))
		}
	}
	return coords
}

// Indices converts coordinates to their index strings.
func Indices(coords []Coord) []string {
	out := make([]string, len(coords))
	for i, c := range coords {
		out[i] = c.String()
	}
	return out
}

func outOfBounds(index string) RuleError {
	return NewRuleError(KindOutOfBounds, index, fmt.Sprintf("index %q is outside the board", index))
}
