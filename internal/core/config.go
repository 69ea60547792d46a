package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains configuration passed to boards and opponents at creation.
type RuntimeConfig struct {
	Seed int64 // RNG seed for reproducible hunting and placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed: 0, // 0 means use current time
	}
}

// Rand returns a random source seeded from the config.
func (c RuntimeConfig) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
