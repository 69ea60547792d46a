// Package match runs a game of Battleship between two sides.
// Side one may be a human feeding indices through a prompt or a registered
// strategy; side two is always a strategy.
package match

import (
	"time"

	"github.com/google/uuid"
)

// ID uniquely identifies a match.
type ID string

// NewID returns a fresh random match ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// Side identifies one of the two players. Side1 always fires first.
type Side int

const (
	NoSide Side = iota
	Side1
	Side2
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case Side1:
		return "player1"
	case Side2:
		return "player2"
	default:
		return "none"
	}
}

// Other returns the opposing side.
func (s Side) Other() Side {
	switch s {
	case Side1:
		return Side2
	case Side2:
		return Side1
	default:
		return NoSide
	}
}

func (s Side) index() int {
	return int(s) - 1
}

// EndReason describes why a match ended.
type EndReason int

const (
	EndReasonCompleted EndReason = iota // one fleet was sunk
	EndReasonCancelled                  // context cancelled or input aborted
)

func (r EndReason) String() string {
	switch r {
	case EndReasonCompleted:
		return "completed"
	case EndReasonCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Shot is one resolved attack.
type Shot struct {
	Index   string
	Hit     bool
	Sunk    bool
	Message string
}

// Result contains the outcome of a match.
type Result struct {
	MatchID   ID
	Reason    EndReason
	Winner    Side
	Player1   string // strategy id, or "human"
	Player2   string
	Turns     int
	Shots1    int
	Shots2    int
	Hits1     int
	Hits2     int
	StartedAt time.Time
	Duration  time.Duration
}

// WinnerStrategy returns the strategy id of the winning side, or "" if the
// match has no winner.
func (r Result) WinnerStrategy() string {
	switch r.Winner {
	case Side1:
		return r.Player1
	case Side2:
		return r.Player2
	default:
		return ""
	}
}
