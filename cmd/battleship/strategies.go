package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/registry"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List computer opponents",
	Long:  `Shows every strategy registered for computer players.`,
	Args:  cobra.NoArgs,
	Run:   runStrategies,
}

func runStrategies(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	list := registry.List()

	if len(list) == 0 {
		fmt.Fprintln(out, "No strategies available.")
		return
	}

	rows := make([][]string, 0, len(list))
	for _, s := range list {
		id := s.ID
		if id == appCfg.Opponent.Strategy {
			id += " *"
		}
		rows = append(rows, []string{id, s.Title})
	}

	fmt.Fprintln(out, table([]string{"ID", "Title"}, rows))
	fmt.Fprintln(out)
	fmt.Fprintln(out, dimStyle.Render("* default opponent. Use 'battleship simulate --p1 <id> --p2 <id>' to compare."))
}
