package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagRecent int
	flagClear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show strategy statistics and recent matches",
	Long: `Display win rates and shots-to-win per strategy over all completed
matches, followed by the most recent matches.

Examples:
  battleship stats
  battleship stats --recent 20
  battleship stats --clear`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagRecent, "recent", 10, "Number of recent matches to show")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all match history")
}

func runStats(cmd *cobra.Command, _ []string) {
	store, err := storage.Open(appCfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagClear {
		if err := store.ClearMatches(); err != nil {
			fatalf("Error clearing history: %v", err)
		}
		fmt.Fprintln(out, "Match history cleared.")
		return
	}

	stats, err := store.StrategyStats()
	if err != nil {
		fatalf("Error retrieving statistics: %v", err)
	}
	recent, err := store.RecentMatches(flagRecent)
	if err != nil {
		fatalf("Error retrieving matches: %v", err)
	}

	if len(recent) == 0 {
		fmt.Fprintln(out, "No matches recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'battleship play' or 'battleship simulate' to record some.")
		return
	}

	fmt.Fprintln(out, panel("Strategies", statsTable(stats)))
	fmt.Fprintln(out, panel("Recent matches", recentTable(recent)))
}

func statsTable(stats []storage.StrategyStats) string {
	if len(stats) == 0 {
		return dimStyle.Render("no completed matches")
	}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		best := "-"
		if s.Wins > 0 {
			best = fmt.Sprintf("%d", s.BestShotsToWin)
		}
		rows = append(rows, []string{
			s.Strategy,
			fmt.Sprintf("%d", s.Games),
			fmt.Sprintf("%d", s.Wins),
			fmt.Sprintf("%.1f%%", 100*s.WinRate),
			fmt.Sprintf("%.1f", s.AvgShotsToWin),
			best,
		})
	}
	return table([]string{"Strategy", "Games", "Wins", "Win rate", "Shots/win", "Best"}, rows)
}

func recentTable(records []storage.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		winner := r.WinnerStrategy
		if winner == "" {
			winner = r.EndReason
		}
		rows = append(rows, []string{
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Player1 + " vs " + r.Player2,
			winner,
			fmt.Sprintf("%d", r.Turns),
			shortID(r.MatchID),
		})
	}
	return table([]string{"Date", "Players", "Winner", "Turns", "Match"}, rows)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
