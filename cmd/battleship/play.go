package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"slices"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/match"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

var (
	flagFleet      string
	flagDifficulty string
	flagName       string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play against the computer",
	Long: `Play a game against a computer opponent. Type a cell such as "c7"
and press Enter to fire; you and the computer alternate one shot each.

Difficulty options:
  easy   - Random shots, never follows up on a hit
  normal - Hunts at random, then chases every hit along the ship
  hard   - Same opponent as normal

Your fleet is placed at random unless --fleet points at a YAML layout
(see 'battleship fleet').

Examples:
  battleship play
  battleship play --difficulty easy
  battleship play --fleet ./my-fleet.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFleet, "fleet", "", "Path to a fleet layout YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagName, "name", "You", "Your name in attack messages")
}

func runPlay(cmd *cobra.Command, _ []string) {
	if flagDifficulty != "" {
		preset, err := config.ParseDifficulty(flagDifficulty)
		if err != nil {
			fatalf("Error: %v", err)
		}
		config.ApplyPreset(&appCfg, preset)
	}

	opponent := appCfg.Opponent.Strategy
	if !registry.Exists(opponent) {
		fmt.Fprintf(os.Stderr, "Error: unknown strategy %q\n", opponent)
		fmt.Fprintln(os.Stderr, "Run 'battleship strategies' to see available opponents.")
		os.Exit(1)
	}

	rng := runtimeConfig().Rand()

	humanBoard, err := playerBoard(rng)
	if err != nil {
		fatalf("Error placing your fleet: %v", err)
	}
	cpuBoard, _, err := randomBoard(rng)
	if err != nil {
		fatalf("Error placing the computer's fleet: %v", err)
	}

	out := cmd.OutOrStdout()
	m, err := match.New(humanBoard, cpuBoard,
		match.Human(flagName, stdinPrompt(cmd.InOrStdin(), out)),
		match.Computer(opponent, rng),
		match.WithLogger(logger),
		match.WithObserver(func(_ match.Side, shot match.Shot) {
			fmt.Fprintln(out, describeShot(shot))
		}),
	)
	if err != nil {
		fatalf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Fprintf(out, "Playing against %s. Ships: %v\n", opponent, appCfg.FleetLengths())
	res, err := m.Run(ctx)

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	saveResult(store, res)

	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(out, "Game abandoned.")
			return
		}
		fatalf("Error: %v", err)
	}

	if res.Winner == match.Side1 {
		fmt.Fprintln(out, winStyle.Render(fmt.Sprintf("You sank the enemy fleet in %d shots!", res.Shots1)))
	} else {
		fmt.Fprintf(out, "The %s opponent sank your fleet in %d shots.\n", opponent, res.Shots2)
	}
}

// playerBoard loads --fleet, or places the configured fleet at random.
func playerBoard(rng *rand.Rand) (*board.Gameboard, error) {
	if flagFleet == "" {
		b, fleet, err := randomBoard(rng)
		if err == nil {
			logger.Debug("random fleet", "ships", fleet)
		}
		return b, err
	}

	fleet, err := readFleet(flagFleet)
	if err != nil {
		return nil, err
	}
	lengths := make([]int, len(fleet))
	for i, p := range fleet {
		lengths[i] = p.Length
	}
	if !sameLengths(lengths, appCfg.FleetLengths()) {
		logger.Warn("fleet differs from the configured one", "yours", lengths, "opponent", appCfg.FleetLengths())
	}

	b := board.New()
	if err := b.PlaceFleet(fleet); err != nil {
		return nil, err
	}
	return b, nil
}

func sameLengths(a, b []int) bool {
	a, b = slices.Clone(a), slices.Clone(b)
	slices.Sort(a)
	slices.Sort(b)
	return slices.Equal(a, b)
}

// scannedLine is one line read from the player, or the error that ended input.
type scannedLine struct {
	text string
	err  error
}

// stdinPrompt reads one index per line from r. Rejected input is reported on
// w before asking again. Reading happens on a background goroutine so that a
// cancelled context ends the prompt without waiting for a line.
func stdinPrompt(r io.Reader, w io.Writer) match.Prompt {
	lines := make(chan scannedLine)
	var once sync.Once
	start := func() {
		go func() {
			defer close(lines)
			scanner := bufio.NewScanner(r)
			for scanner.Scan() {
				lines <- scannedLine{text: scanner.Text()}
			}
			err := scanner.Err()
			if err == nil {
				err = io.EOF
			}
			lines <- scannedLine{err: err}
		}()
	}

	return func(ctx context.Context, rejected error) (string, error) {
		once.Do(start)
		if rejected != nil {
			fmt.Fprintf(w, "  %v\n", rejected)
		}
		for {
			if err := ctx.Err(); err != nil {
				return "", err
			}
			fmt.Fprint(w, "Your shot: ")

			select {
			case <-ctx.Done():
				fmt.Fprintln(w)
				return "", ctx.Err()
			case l, ok := <-lines:
				if !ok {
					return "", io.EOF
				}
				if l.err != nil {
					return "", l.err
				}
				if line := strings.ToLower(strings.TrimSpace(l.text)); line != "" {
					return line, nil
				}
			}
		}
	}
}

func describeShot(shot match.Shot) string {
	switch {
	case shot.Sunk:
		return shot.Message + " - hit, ship sunk!"
	case shot.Hit:
		return shot.Message + " - hit"
	default:
		return shot.Message + " - miss"
	}
}
