package main

import (
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-battleship/internal/board"
	"github.com/vovakirdan/tui-battleship/internal/match"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// fleetFile is the YAML layout written by `fleet` and read by `play --fleet`.
type fleetFile struct {
	Fleet []board.Placement `yaml:"fleet"`
}

func readFleet(path string) ([]board.Placement, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fleet %s: %w", path, err)
	}
	var f fleetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fleet %s: %w", path, err)
	}
	if len(f.Fleet) == 0 {
		return nil, fmt.Errorf("fleet %s has no ships", path)
	}
	return f.Fleet, nil
}

func encodeFleet(fleet []board.Placement) ([]byte, error) {
	return yaml.Marshal(fleetFile{Fleet: fleet})
}

// randomBoard places the configured fleet at random.
func randomBoard(rng *rand.Rand) (*board.Gameboard, []board.Placement, error) {
	fleet, err := board.RandomFleet(rng, appCfg.FleetLengths(), appCfg.Placement.MaxAttempts)
	if err != nil {
		return nil, nil, err
	}
	b := board.New()
	if err := b.PlaceFleet(fleet); err != nil {
		return nil, nil, err
	}
	return b, fleet, nil
}

func recordOf(res match.Result) storage.Record {
	winner := ""
	if res.Winner != match.NoSide {
		winner = res.Winner.String()
	}
	return storage.Record{
		MatchID:        string(res.MatchID),
		Player1:        res.Player1,
		Player2:        res.Player2,
		Winner:         winner,
		WinnerStrategy: res.WinnerStrategy(),
		EndReason:      res.Reason.String(),
		Turns:          res.Turns,
		Shots1:         res.Shots1,
		Shots2:         res.Shots2,
		Hits1:          res.Hits1,
		Hits2:          res.Hits2,
		DurationMs:     res.Duration.Milliseconds(),
	}
}

// openStore opens the history database. Failures are logged and the command
// carries on without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(appCfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open match history", "error", err)
		return nil
	}
	return store
}

func saveResult(store *storage.Store, res match.Result) {
	if store == nil {
		return
	}
	if _, err := store.SaveMatch(recordOf(res)); err != nil {
		logger.Warn("could not save match", "match", res.MatchID, "error", err)
	}
}
