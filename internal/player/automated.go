package player

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Attack is one entry of an automated attacker's log.
type Attack struct {
	Index string
	IsHit bool
}

// Mode is the search state an AutomatedAttacker is in. It is derived from the
// pending-target stack and the hits on the ship being chased.
type Mode int

const (
	ModeHunt  Mode = iota // no pursuit: sample the grid at random
	ModeProbe             // one hit on the current ship: try its neighbours
	ModeLine              // two or more hits: follow the ship's axis
)

func (m Mode) String() string {
	switch m {
	case ModeHunt:
		return "hunt"
	case ModeProbe:
		return "probe"
	case ModeLine:
		return "line"
	default:
		return "unknown"
	}
}

// Option configures an AutomatedAttacker.
type Option func(*AutomatedAttacker)

// WithRand sets the random source used in hunt mode. Seeded sources make
// games reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(a *AutomatedAttacker) {
		a.rng = rng
	}
}

// WithoutTargeting disables pursuit: every shot is sampled at random.
func WithoutTargeting() Option {
	return func(a *AutomatedAttacker) {
		a.targeting = false
	}
}

// WithName sets the name used in result messages. Defaults to "Computer".
func WithName(name string) Option {
	return func(a *AutomatedAttacker) {
		a.name = name
	}
}

// AutomatedAttacker picks its own targets against an opposing board.
//
// With no pursuit in progress it hunts at random. When a shot hits, the hit's
// unattacked orthogonal neighbours are pushed on a LIFO stack and popped on the
// following turns. A second hit next to an earlier one fixes the ship's axis;
// from then on only candidates on that line are kept. Sinking the ship clears
// the stack and the attacker goes back to hunting.
type AutomatedAttacker struct {
	name      string
	enemy     Target
	rng       *rand.Rand
	targeting bool

	attacks  []Attack
	attacked map[core.Coord]bool
	chase    []core.Coord // hits on the ship currently pursued
	pending  []core.Coord
	cells    []core.Coord
}

// NewAutomatedAttacker creates an attacker firing at enemy.
func NewAutomatedAttacker(enemy Target, opts ...Option) *AutomatedAttacker {
	a := &AutomatedAttacker{
		name:      "Computer",
		enemy:     enemy,
		targeting: true,
		attacks:   make([]Attack, 0, core.Cells),
		attacked:  make(map[core.Coord]bool, core.Cells),
		cells:     core.AllCoords(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return a
}

// Attack chooses the next target, fires at it and returns a message naming
// the attacked index. It fails with BoardExhausted once all cells were tried.
func (a *AutomatedAttacker) Attack() (string, error) {
	if len(a.attacks) >= core.Cells {
		return "", core.NewRuleError(core.KindBoardExhausted, "",
			fmt.Sprintf("all %d cells have been attacked", core.Cells))
	}

	target := a.next()
	index := target.String()
	if err := a.enemy.ReceiveAttack(index); err != nil {
		return "", err
	}

	ship, isHit := shipAt(a.enemy.ShipsState(), index)
	a.attacks = append(a.attacks, Attack{Index: index, IsHit: isHit})
	a.attacked[target] = true

	if isHit && a.targeting {
		if ship.Sunk {
			a.pending = a.pending[:0]
			a.chase = a.chase[:0]
		} else {
			a.pursue(target)
		}
	}

	return fmt.Sprintf("%s attacked at %s", a.name, index), nil
}

// Attacks returns the attack log, oldest first.
func (a *AutomatedAttacker) Attacks() []Attack {
	out := make([]Attack, len(a.attacks))
	copy(out, a.attacks)
	return out
}

// LastAttack returns the most recent attack, if any.
func (a *AutomatedAttacker) LastAttack() (Attack, bool) {
	if len(a.attacks) == 0 {
		return Attack{}, false
	}
	return a.attacks[len(a.attacks)-1], true
}

// Mode reports the current search state.
func (a *AutomatedAttacker) Mode() Mode {
	switch {
	case len(a.pending) == 0:
		return ModeHunt
	case len(a.chase) >= 2:
		return ModeLine
	default:
		return ModeProbe
	}
}

// next pops the pending stack, falling back to a random unattacked cell.
func (a *AutomatedAttacker) next() core.Coord {
	for len(a.pending) > 0 {
		c := a.pending[len(a.pending)-1]
		a.pending = a.pending[:len(a.pending)-1]
		if !a.attacked[c] {
			return c
		}
	}
	a.chase = a.chase[:0]
	return a.hunt()
}

// hunt samples uniformly until it lands on a cell not yet attacked.
// Attack guarantees at least one such cell exists.
func (a *AutomatedAttacker) hunt() core.Coord {
	for {
		c := a.cells[a.rng.Intn(len(a.cells))]
		if !a.attacked[c] {
			return c
		}
	}
}

// pursue pushes the unattacked neighbours of hit. If hit extends an earlier
// hit, both the new candidates and the existing stack are narrowed to the
// shared axis.
func (a *AutomatedAttacker) pursue(hit core.Coord) {
	candidates := make([]core.Coord, 0, 4)
	for _, n := range hit.Neighbors() {
		if !a.attacked[n] && !a.isPending(n) {
			candidates = append(candidates, n)
		}
	}

	// Ships never touch, so an adjacent hit belongs to the ship being chased.
	prev, ok := a.previousHit(hit)
	a.chase = append(a.chase, hit)
	if ok {
		onAxis := func(c core.Coord) bool {
			if prev.Col == hit.Col {
				return c.Col == hit.Col
			}
			return c.Row == hit.Row
		}
		candidates = filterCoords(candidates, onAxis)
		a.pending = filterCoords(a.pending, onAxis)
	}

	a.pending = append(a.pending, candidates...)
}

// previousHit returns a hit of the current chase orthogonally adjacent to c.
func (a *AutomatedAttacker) previousHit(c core.Coord) (core.Coord, bool) {
	for _, h := range a.chase {
		if h.Manhattan(c) == 1 {
			return h, true
		}
	}
	return core.Coord{}, false
}

func (a *AutomatedAttacker) isPending(c core.Coord) bool {
	for _, p := range a.pending {
		if p == c {
			return true
		}
	}
	return false
}

// filterCoords keeps the coords matching keep, reusing the backing array.
func filterCoords(coords []core.Coord, keep func(core.Coord) bool) []core.Coord {
	out := coords[:0]
	for _, c := range coords {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}
