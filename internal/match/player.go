package match

import (
	"context"
	"errors"
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/player"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

// HumanID is the strategy id recorded for a human side.
const HumanID = "human"

// Player fires at the opposing board for one side of a match.
type Player interface {
	// ID returns the strategy id, or HumanID.
	ID() string

	// Fire makes exactly one accepted attack.
	Fire(ctx context.Context) (Shot, error)
}

// Entrant builds a Player once the opposing board is known.
type Entrant func(enemy *board.Gameboard) (Player, error)

// Prompt asks a human for the next index. rejected is the error produced by
// the previous answer, or nil on the first call of a turn. Returning an error
// aborts the match.
type Prompt func(ctx context.Context, rejected error) (string, error)

// Computer enters the registered strategy id.
func Computer(id string, rng *rand.Rand) Entrant {
	return func(enemy *board.Gameboard) (Player, error) {
		s, err := registry.Create(id, enemy, rng)
		if err != nil {
			return nil, err
		}
		return &computer{id: id, strategy: s, enemy: enemy}, nil
	}
}

// Human enters a player whose indices come from prompt.
func Human(name string, prompt Prompt) Entrant {
	return func(enemy *board.Gameboard) (Player, error) {
		if prompt == nil {
			return nil, errors.New("match: human player needs a prompt")
		}
		return &human{attacker: player.NewAttacker(name, enemy), prompt: prompt}, nil
	}
}

type computer struct {
	id       string
	strategy registry.Strategy
	enemy    *board.Gameboard
}

func (c *computer) ID() string { return c.id }

func (c *computer) Fire(ctx context.Context) (Shot, error) {
	if err := ctx.Err(); err != nil {
		return Shot{}, err
	}

	msg, err := c.strategy.Attack()
	if err != nil {
		return Shot{}, err
	}
	last, _ := c.strategy.LastAttack()

	shot := Shot{Index: last.Index, Hit: last.IsHit, Message: msg}
	if shot.Hit {
		for _, s := range c.enemy.ShipsState() {
			if s.Covers(last.Index) {
				shot.Sunk = s.Sunk
				break
			}
		}
	}
	return shot, nil
}

type human struct {
	attacker *player.Attacker
	prompt   Prompt
}

func (h *human) ID() string { return HumanID }

// Fire keeps prompting until the board accepts an index. Bad coordinates and
// repeated targets are handed back to the prompt; other errors end the turn.
func (h *human) Fire(ctx context.Context) (Shot, error) {
	var rejected error
	for {
		index, err := h.prompt(ctx, rejected)
		if err != nil {
			return Shot{}, err
		}

		res, err := h.attacker.Attack(index)
		if err == nil {
			return Shot{Index: res.Index, Hit: res.IsHit, Sunk: res.Sunk, Message: res.Message}, nil
		}
		switch core.KindOf(err) {
		case core.KindOutOfBounds, core.KindRepeatAttack:
			rejected = err
		default:
			return Shot{}, err
		}
	}
}
