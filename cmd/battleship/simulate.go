package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/match"
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagGames  int
	flagP1     string
	flagP2     string
	flagNoSave bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless strategy-vs-strategy matches",
	Long: `Play N matches between two computer strategies on freshly placed
random fleets. Player one always fires first. Results are stored in the
match history unless --no-save is given.

Examples:
  battleship simulate
  battleship simulate --games 1000 --p1 hunter --p2 random
  battleship simulate --games 50 --seed 7 --no-save`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 0, "Number of matches (default from config)")
	simulateCmd.Flags().StringVar(&flagP1, "p1", registry.Hunter, "Strategy for player one")
	simulateCmd.Flags().StringVar(&flagP2, "p2", registry.Random, "Strategy for player two")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results in the database")
}

// tally aggregates one strategy's results over a simulation run.
type tally struct {
	wins       int
	shotsToWin int
	hits       int
	shots      int
}

func (t tally) avgShotsToWin() float64 {
	if t.wins == 0 {
		return 0
	}
	return float64(t.shotsToWin) / float64(t.wins)
}

func runSimulate(cmd *cobra.Command, _ []string) {
	games := appCfg.Simulation.Games
	if flagGames > 0 {
		games = flagGames
	}
	for _, id := range []string{flagP1, flagP2} {
		if !registry.Exists(id) {
			fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", id)
			fmt.Fprintln(os.Stderr, "Run 'battleship strategies' to see available opponents.")
			os.Exit(1)
		}
	}

	var store *storage.Store
	if !flagNoSave {
		if store = openStore(); store != nil {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rng := runtimeConfig().Rand()
	started := time.Now()
	var sides [2]tally
	played := 0

	for i := 0; i < games; i++ {
		b1, _, err := randomBoard(rng)
		if err != nil {
			fatalf("Error placing fleet: %v", err)
		}
		b2, _, err := randomBoard(rng)
		if err != nil {
			fatalf("Error placing fleet: %v", err)
		}

		m, err := match.New(b1, b2,
			match.Computer(flagP1, rng),
			match.Computer(flagP2, rng),
			match.WithLogger(logger),
		)
		if err != nil {
			fatalf("Error: %v", err)
		}

		res, err := m.Run(ctx)
		if err != nil {
			logger.Warn("simulation interrupted", "played", played, "error", err)
			break
		}
		saveResult(store, res)
		played++

		sides[0].shots += res.Shots1
		sides[0].hits += res.Hits1
		sides[1].shots += res.Shots2
		sides[1].hits += res.Hits2
		switch res.Winner {
		case match.Side1:
			sides[0].wins++
			sides[0].shotsToWin += res.Shots1
		case match.Side2:
			sides[1].wins++
			sides[1].shotsToWin += res.Shots2
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), simulationSummary(played, time.Since(started), [2]string{flagP1, flagP2}, sides))
}

func simulationSummary(played int, elapsed time.Duration, ids [2]string, sides [2]tally) string {
	rows := make([][]string, 0, 2)
	for i, t := range sides {
		rate, accuracy := 0.0, 0.0
		if played > 0 {
			rate = 100 * float64(t.wins) / float64(played)
		}
		if t.shots > 0 {
			accuracy = 100 * float64(t.hits) / float64(t.shots)
		}
		rows = append(rows, []string{
			fmt.Sprintf("player%d", i+1),
			ids[i],
			fmt.Sprintf("%d", t.wins),
			fmt.Sprintf("%.1f%%", rate),
			fmt.Sprintf("%.1f", t.avgShotsToWin()),
			fmt.Sprintf("%.1f%%", accuracy),
		})
	}

	body := table([]string{"Side", "Strategy", "Wins", "Win rate", "Shots/win", "Accuracy"}, rows)
	footer := dimStyle.Render(fmt.Sprintf("%d matches in %s", played, elapsed.Round(time.Millisecond)))
	return panel("Simulation", body+"\n\n"+footer)
}
