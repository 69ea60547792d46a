package registry

import (
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/player"
)

// Built-in strategy IDs.
const (
	Hunter = "hunter"
	Random = "random"
)

func init() {
	Register(Hunter, "Hunt & Target", func(target player.Target, rng *rand.Rand) Strategy {
		return player.NewAutomatedAttacker(target, player.WithRand(rng))
	})
	Register(Random, "Random Shots", func(target player.Target, rng *rand.Rand) Strategy {
		return player.NewAutomatedAttacker(target, player.WithRand(rng), player.WithoutTargeting())
	})
}
