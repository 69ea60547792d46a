// battleship is a command-line Battleship game and strategy lab.
//
// Usage:
//
//	battleship play              - Play against the computer on stdin/stdout
//	battleship simulate          - Pit two strategies against each other
//	battleship fleet             - Generate a random fleet layout as YAML
//	battleship stats             - Show strategy statistics and recent matches
//	battleship strategies        - List available computer opponents
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible games
//	--db <path>          - Set database path (default: ~/.battleship/history.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagEnvFile  string

	// Resolved in PersistentPreRun
	appCfg config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "Battleship - sink the enemy fleet from your terminal",
	Long: `Battleship is a rules engine and command-line game on a 10x10 grid.

Columns are letters a-j, rows are numbers 1-10: "a1" is the top-left cell.

Available commands:
  play        - Play against a computer opponent
  simulate    - Run headless strategy-vs-strategy matches
  fleet       - Generate a random fleet layout
  stats       - View strategy statistics and match history
  strategies  - List computer opponents

Examples:
  battleship play
  battleship play --difficulty easy --fleet ./my-fleet.yaml
  battleship simulate --games 500 --p1 hunter --p2 random
  battleship fleet --out ./my-fleet.yaml
  battleship stats`,
	PersistentPreRun: loadConfig,
	SilenceUsage:     true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to match history database (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Path to .env file with BATTLESHIP_* overrides")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(fleetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(strategiesCmd)
}

// loadConfig resolves configuration: file, then environment, then flags.
func loadConfig(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fatalf("Error loading config: %v", err)
	}
	if err := config.ApplyEnv(&cfg, flagEnvFile); err != nil {
		fatalf("Error reading environment: %v", err)
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}

	if err := cfg.Validate(); err != nil {
		fatalf("Invalid config: %v", err)
	}

	appCfg = cfg
	logger = newLogger(cfg.Log.Level)
	logger.Debug("config loaded", "seed", cfg.Seed, "db", cfg.Storage.DBPath, "strategy", cfg.Opponent.Strategy)
}

// runtimeConfig returns the runtime settings derived from appCfg.
func runtimeConfig() core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.Seed = appCfg.Seed
	return rt
}

// fatalf prints an error to stderr and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
