package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var flagOut string

var fleetCmd = &cobra.Command{
	Use:   "fleet",
	Short: "Generate a random fleet layout",
	Long: `Place the configured fleet at random and print the layout as YAML.
The file can be edited and passed to 'battleship play --fleet'.

Examples:
  battleship fleet
  battleship fleet --seed 42 --out ./my-fleet.yaml`,
	Args: cobra.NoArgs,
	Run:  runFleet,
}

func init() {
	fleetCmd.Flags().StringVar(&flagOut, "out", "", "Write the layout to this file instead of stdout")
}

func runFleet(cmd *cobra.Command, _ []string) {
	_, fleet, err := randomBoard(runtimeConfig().Rand())
	if err != nil {
		fatalf("Error placing fleet: %v", err)
	}

	data, err := encodeFleet(fleet)
	if err != nil {
		fatalf("Error encoding fleet: %v", err)
	}

	if flagOut == "" {
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return
	}

	if err := os.MkdirAll(filepath.Dir(flagOut), 0o755); err != nil {
		fatalf("Error creating directory: %v", err)
	}
	if err := os.WriteFile(flagOut, data, 0o644); err != nil {
		fatalf("Error writing fleet: %v", err)
	}
	logger.Info("fleet written", "path", flagOut, "ships", len(fleet))
}
