package config

import (
	_ "embed"
)

//go:embed defaults/battleship.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Fleet: []ShipConfig{
			{Name: "carrier", Length: 5},
			{Name: "battleship", Length: 4},
			{Name: "cruiser", Length: 4},
			{Name: "submarine", Length: 3},
			{Name: "destroyer", Length: 2},
		},
		Placement: PlacementConfig{
			MaxAttempts: 1000,
		},
		Opponent: OpponentConfig{
			Strategy:   "hunter",
			Difficulty: DifficultyNormal,
		},
		Simulation: SimulationConfig{
			Games: 100,
		},
		Storage: StorageConfig{
			DBPath: "~/.battleship/history.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
