package board

// Ship is a sinkable vessel with a fixed length and a hit counter.
type Ship struct {
	length int
	hits   int
}

// NewShip creates an undamaged ship of the given length.
func NewShip(length int) *Ship {
	return &Ship{length: length}
}

// Hit records one hit. Hits past the ship's length are counted but change nothing.
func (s *Ship) Hit() {
	s.hits++
}

// IsSunk reports whether the ship has taken at least length hits.
func (s *Ship) IsSunk() bool {
	return s.hits >= s.length
}

// Length returns the ship's length.
func (s *Ship) Length() int {
	return s.length
}

// Hits returns how many hits the ship has taken.
func (s *Ship) Hits() int {
	return s.hits
}
