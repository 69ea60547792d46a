package match

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-battleship/internal/board"
)

// Observer is called after every accepted shot.
type Observer func(side Side, shot Shot)

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger. Shots are logged at debug level and the
// outcome at info level. Without one, nothing is logged.
func WithLogger(l *log.Logger) Option {
	return func(m *Match) {
		m.logger = l
	}
}

// WithObserver registers a callback for every accepted shot.
func WithObserver(o Observer) Option {
	return func(m *Match) {
		m.observer = o
	}
}

// WithID overrides the generated match ID.
func WithID(id ID) Option {
	return func(m *Match) {
		m.id = id
	}
}

// Match is a game in progress between two sides. Sides alternate strictly:
// one accepted shot each, Side1 first, regardless of hits.
type Match struct {
	id       ID
	boards   [2]*board.Gameboard
	players  [2]Player
	logger   *log.Logger
	observer Observer

	turn    Side
	winner  Side
	turns   int
	shots   [2]int
	hits    [2]int
	started time.Time
}

// New creates a match. board1 belongs to Side1 and is fired at by Side2;
// board2 belongs to Side2. Both boards must already hold their fleets.
func New(board1, board2 *board.Gameboard, p1, p2 Entrant, opts ...Option) (*Match, error) {
	for i, b := range []*board.Gameboard{board1, board2} {
		if b == nil || b.ShipsRemaining() == 0 {
			return nil, fmt.Errorf("match: side %d has no ships", i+1)
		}
	}

	m := &Match{
		id:     NewID(),
		boards: [2]*board.Gameboard{board1, board2},
		logger: log.New(io.Discard),
		turn:   Side1,
	}
	for _, opt := range opts {
		opt(m)
	}

	var err error
	if m.players[0], err = p1(board2); err != nil {
		return nil, fmt.Errorf("match: player1: %w", err)
	}
	if m.players[1], err = p2(board1); err != nil {
		return nil, fmt.Errorf("match: player2: %w", err)
	}

	m.logger = m.logger.With("match", m.id)
	return m, nil
}

// ID returns the match identifier.
func (m *Match) ID() ID {
	return m.id
}

// Turn returns the side due to fire next, or NoSide once the match is over.
func (m *Match) Turn() Side {
	if m.Over() {
		return NoSide
	}
	return m.turn
}

// Over reports whether either fleet has been sunk.
func (m *Match) Over() bool {
	return m.winner != NoSide
}

// Winner returns the winning side, or NoSide while the match is running.
func (m *Match) Winner() Side {
	return m.winner
}

// Board returns the board owned by side.
func (m *Match) Board(side Side) *board.Gameboard {
	return m.boards[side.index()]
}

// Step lets the side on turn fire one shot.
func (m *Match) Step(ctx context.Context) (Shot, error) {
	if m.Over() {
		return Shot{}, errors.New("match: already over")
	}
	if m.started.IsZero() {
		m.started = time.Now()
	}

	side := m.turn
	i := side.index()
	shot, err := m.players[i].Fire(ctx)
	if err != nil {
		return Shot{}, err
	}

	m.turns++
	m.shots[i]++
	if shot.Hit {
		m.hits[i]++
	}
	m.logger.Debug("shot",
		"turn", m.turns,
		"side", side,
		"index", shot.Index,
		"hit", shot.Hit,
		"sunk", shot.Sunk,
	)
	if m.observer != nil {
		m.observer(side, shot)
	}

	if m.Board(side.Other()).AreAllShipsSunk() {
		m.winner = side
	}
	m.turn = side.Other()
	return shot, nil
}

// Run steps until one fleet is sunk. If ctx is cancelled or a player fails,
// the partial result is returned with EndReasonCancelled alongside the error.
func (m *Match) Run(ctx context.Context) (Result, error) {
	for !m.Over() {
		if err := ctx.Err(); err != nil {
			return m.finish(EndReasonCancelled), err
		}
		if _, err := m.Step(ctx); err != nil {
			return m.finish(EndReasonCancelled), err
		}
	}
	return m.finish(EndReasonCompleted), nil
}

func (m *Match) finish(reason EndReason) Result {
	res := m.result(reason)
	if reason == EndReasonCompleted {
		m.logger.Info("match finished",
			"winner", res.Winner,
			"strategy", res.WinnerStrategy(),
			"turns", res.Turns,
			"duration", res.Duration.Round(time.Millisecond),
		)
	} else {
		m.logger.Warn("match aborted", "turns", res.Turns)
	}
	return res
}

func (m *Match) result(reason EndReason) Result {
	res := Result{
		MatchID:   m.id,
		Reason:    reason,
		Winner:    m.winner,
		Player1:   m.players[0].ID(),
		Player2:   m.players[1].ID(),
		Turns:     m.turns,
		Shots1:    m.shots[0],
		Shots2:    m.shots[1],
		Hits1:     m.hits[0],
		Hits2:     m.hits[1],
		StartedAt: m.started,
	}
	if !m.started.IsZero() {
		res.Duration = time.Since(m.started)
	}
	return res
}
