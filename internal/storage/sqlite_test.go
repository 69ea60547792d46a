package storage

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "history.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.battleship/history.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".battleship", "history.db")); err != nil {
		t.Errorf("database not created under home: %v", err)
	}
}

func TestSaveAndRetrieveMatch(t *testing.T) {
	store := openTestStore(t)

	in := Record{
		MatchID:        "m-1",
		Player1:        "hunter",
		Player2:        "random",
		Winner:         "player1",
		WinnerStrategy: "hunter",
		EndReason:      "completed",
		Turns:          97,
		Shots1:         49,
		Shots2:         48,
		Hits1:          17,
		Hits2:          9,
		DurationMs:     12,
	}
	id, err := store.SaveMatch(in)
	if err != nil {
		t.Fatalf("SaveMatch() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected a positive ID, got %d", id)
	}

	got, err := store.MatchByID("m-1")
	if err != nil {
		t.Fatalf("MatchByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("match not found")
	}
	in.ID = id
	in.CreatedAt = got.CreatedAt
	if *got != in {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", *got, in)
	}

	missing, err := store.MatchByID("nope")
	if err != nil || missing != nil {
		t.Errorf("MatchByID(nope) = %v, %v; expected nil, nil", missing, err)
	}

	if _, err := store.SaveMatch(in); err == nil {
		t.Error("expected an error for a duplicate match ID")
	}
}

func TestRecentMatches(t *testing.T) {
	store := openTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if _, err := store.SaveMatch(Record{MatchID: id, Player1: "hunter", Player2: "random", EndReason: "completed"}); err != nil {
			t.Fatal(err)
		}
	}

	recent, err := store.RecentMatches(2)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(recent))
	}
	if recent[0].MatchID != "c" || recent[1].MatchID != "b" {
		t.Errorf("expected newest first, got %s, %s", recent[0].MatchID, recent[1].MatchID)
	}

	all, err := store.RecentMatches(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 3 {
		t.Errorf("default limit should return all 3, got %d", len(all))
	}
}

func TestStrategyStats(t *testing.T) {
	store := openTestStore(t)

	records := []Record{
		{MatchID: "1", Player1: "hunter", Player2: "random", Winner: "player1", EndReason: "completed", Shots1: 50, Shots2: 49},
		{MatchID: "2", Player1: "hunter", Player2: "random", Winner: "player1", EndReason: "completed", Shots1: 60, Shots2: 59},
		{MatchID: "3", Player1: "random", Player2: "hunter", Winner: "player1", EndReason: "completed", Shots1: 90, Shots2: 89},
		{MatchID: "4", Player1: "hunter", Player2: "hunter", EndReason: "cancelled", Shots1: 3, Shots2: 2},
	}
	for _, r := range records {
		if _, err := store.SaveMatch(r); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.StrategyStats()
	if err != nil {
		t.Fatalf("StrategyStats() failed: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("expected 2 strategies, got %d: %+v", len(stats), stats)
	}

	hunter, random := stats[0], stats[1]
	if hunter.Strategy != "hunter" || random.Strategy != "random" {
		t.Fatalf("unexpected order: %+v", stats)
	}
	if hunter.Games != 3 || hunter.Wins != 2 || hunter.BestShotsToWin != 50 {
		t.Errorf("hunter stats = %+v", hunter)
	}
	if math.Abs(hunter.AvgShotsToWin-55) > 1e-9 || math.Abs(hunter.WinRate-2.0/3.0) > 1e-9 {
		t.Errorf("hunter averages = %+v", hunter)
	}
	if random.Games != 3 || random.Wins != 1 || random.AvgShotsToWin != 90 {
		t.Errorf("random stats = %+v", random)
	}
}

func TestClearMatches(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveMatch(Record{MatchID: "x", Player1: "hunter", Player2: "random", EndReason: "completed"}); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearMatches(); err != nil {
		t.Fatalf("ClearMatches() failed: %v", err)
	}

	recent, err := store.RecentMatches(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(recent) != 0 {
		t.Errorf("expected no matches after clear, got %d", len(recent))
	}

	stats, err := store.StrategyStats()
	if err != nil {
		t.Fatal(err)
	}
	if len(stats) != 0 {
		t.Errorf("expected no stats after clear, got %+v", stats)
	}
}

func TestStoreErrorPaths(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	store := New(db)
	boom := errors.New("disk I/O error")

	mock.ExpectExec("INSERT INTO matches").WillReturnError(boom)
	if _, err := store.SaveMatch(Record{MatchID: "a"}); !errors.Is(err, boom) {
		t.Errorf("SaveMatch() error = %v, expected wrapped %v", err, boom)
	}

	mock.ExpectExec("INSERT INTO matches").WillReturnResult(sqlmock.NewErrorResult(boom))
	if _, err := store.SaveMatch(Record{MatchID: "b"}); !errors.Is(err, boom) {
		t.Errorf("SaveMatch() LastInsertId error = %v", err)
	}

	mock.ExpectQuery("FROM matches").WillReturnError(boom)
	if _, err := store.RecentMatches(5); !errors.Is(err, boom) {
		t.Errorf("RecentMatches() error = %v", err)
	}

	mock.ExpectQuery("FROM matches").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	if _, err := store.RecentMatches(5); err == nil {
		t.Error("expected a scan error for a short row")
	}

	mock.ExpectQuery("FROM sides").WillReturnError(boom)
	if _, err := store.StrategyStats(); !errors.Is(err, boom) {
		t.Errorf("StrategyStats() error = %v", err)
	}

	mock.ExpectExec("DELETE FROM matches").WillReturnError(boom)
	if err := store.ClearMatches(); !errors.Is(err, boom) {
		t.Errorf("ClearMatches() error = %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
