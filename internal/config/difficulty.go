package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag or env value into a preset.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard)", s)
	}
}

// StrategyForPreset returns the opponent strategy id for a preset.
func StrategyForPreset(preset DifficultyPreset) string {
	switch preset {
	case DifficultyEasy:
		return "random"
	default:
		return "hunter"
	}
}

// ApplyPreset sets the opponent from a difficulty preset, replacing any
// configured strategy.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	cfg.Opponent.Difficulty = preset
	cfg.Opponent.Strategy = StrategyForPreset(preset)
}
