// Package config provides YAML-based configuration loading, difficulty
// presets and environment overrides for the battleship CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Config contains all runtime configuration.
type Config struct {
	Fleet      []ShipConfig     `yaml:"fleet"`
	Placement  PlacementConfig  `yaml:"placement"`
	Opponent   OpponentConfig   `yaml:"opponent"`
	Simulation SimulationConfig `yaml:"simulation"`
	Storage    StorageConfig    `yaml:"storage"`
	Log        LogConfig        `yaml:"log"`
	Seed       int64            `yaml:"seed"` // 0 = time-based
}

// ShipConfig names one ship of the fleet.
type ShipConfig struct {
	Name   string `yaml:"name"`
	Length int    `yaml:"length"`
}

// PlacementConfig controls random fleet placement.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// OpponentConfig selects the computer opponent.
type OpponentConfig struct {
	Strategy   string           `yaml:"strategy"`
	Difficulty DifficultyPreset `yaml:"difficulty"`
}

// SimulationConfig defines headless strategy-vs-strategy runs.
type SimulationConfig struct {
	Games int `yaml:"games"`
}

// StorageConfig locates the match history database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

var logLevels = []string{"debug", "info", "warn", "error"}

// FleetLengths returns the ship lengths in fleet order.
func (c Config) FleetLengths() []int {
	lengths := make([]int, len(c.Fleet))
	for i, s := range c.Fleet {
		lengths[i] = s.Length
	}
	return lengths
}

// Validate checks the configuration for values no game could run with.
func (c Config) Validate() error {
	if len(c.Fleet) == 0 {
		return ValidationError{Code: "EMPTY_FLEET", Message: "fleet has no ships"}
	}

	// Each ship together with the cells below and to the right of it claims
	// 2*(length+1) cells of a grid padded by one row and column. Those claims
	// never overlap, so a fleet claiming more than the padded grid cannot fit.
	claimed := 0
	for _, s := range c.Fleet {
		if s.Length < 1 || s.Length > core.GridSize {
			return ValidationError{
				Code:    "INVALID_SHIP",
				Message: fmt.Sprintf("ship %q has length %d, expected 1..%d", s.Name, s.Length, core.GridSize),
			}
		}
		claimed += 2 * (s.Length + 1)
	}
	if padded := (core.GridSize + 1) * (core.GridSize + 1); claimed > padded {
		return ValidationError{
			Code:    "FLEET_TOO_LARGE",
			Message: fmt.Sprintf("fleet needs %d cells of clearance, grid offers %d", claimed, padded),
		}
	}

	if c.Placement.MaxAttempts < 1 {
		return ValidationError{
			Code:    "INVALID_ATTEMPTS",
			Message: fmt.Sprintf("placement.max_attempts must be positive, got %d", c.Placement.MaxAttempts),
		}
	}
	if c.Opponent.Strategy == "" {
		return ValidationError{Code: "NO_STRATEGY", Message: "opponent.strategy is empty"}
	}
	if c.Simulation.Games < 1 {
		return ValidationError{
			Code:    "INVALID_GAMES",
			Message: fmt.Sprintf("simulation.games must be positive, got %d", c.Simulation.Games),
		}
	}
	if !validLogLevel(c.Log.Level) {
		return ValidationError{
			Code:    "INVALID_LOG_LEVEL",
			Message: fmt.Sprintf("log.level %q is not one of %s", c.Log.Level, strings.Join(logLevels, ", ")),
		}
	}
	return nil
}

func validLogLevel(level string) bool {
	for _, l := range logLevels {
		if l == level {
			return true
		}
	}
	return false
}
