// Package storage provides SQLite-based persistence for finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match history.
type Store struct {
	db *sql.DB
}

// Record is the summary of one finished match.
type Record struct {
	ID             int64
	MatchID        string
	Player1        string // strategy id, or "human"
	Player2        string
	Winner         string // "player1", "player2", or empty if aborted
	WinnerStrategy string
	EndReason      string // "completed", "cancelled"
	Turns          int
	Shots1         int
	Shots2         int
	Hits1          int
	Hits2          int
	DurationMs     int64
	CreatedAt      time.Time
}

// StrategyStats contains aggregated results for one strategy over completed
// matches. A strategy playing both sides of a match is counted twice.
type StrategyStats struct {
	Strategy       string
	Games          int
	Wins           int
	WinRate        float64 // 0..1
	AvgShotsToWin  float64 // 0 if the strategy never won
	BestShotsToWin int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := New(db)
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// New wraps an existing connection. The schema is assumed to exist.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			match_id TEXT NOT NULL UNIQUE,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			winner TEXT NOT NULL DEFAULT '',
			winner_strategy TEXT NOT NULL DEFAULT '',
			end_reason TEXT NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			shots1 INTEGER NOT NULL DEFAULT 0,
			shots2 INTEGER NOT NULL DEFAULT 0,
			hits1 INTEGER NOT NULL DEFAULT 0,
			hits2 INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_player1 ON matches(player1);
		CREATE INDEX IF NOT EXISTS idx_matches_player2 ON matches(player2);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(r Record) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO matches
		 (match_id, player1, player2, winner, winner_strategy, end_reason,
		  turns, shots1, shots2, hits1, hits2, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.MatchID,
		r.Player1,
		r.Player2,
		r.Winner,
		r.WinnerStrategy,
		r.EndReason,
		r.Turns,
		r.Shots1,
		r.Shots2,
		r.Hits1,
		r.Hits2,
		r.DurationMs,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// MatchByID retrieves a match by its match ID. Returns nil if not found.
func (s *Store) MatchByID(matchID string) (*Record, error) {
	row := s.db.QueryRow(
		`SELECT `+recordColumns+`
		 FROM matches
		 WHERE match_id = ?`,
		matchID,
	)

	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query match: %w", err)
	}
	return &r, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+recordColumns+`
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// StrategyStats aggregates completed matches per strategy, ordered by ID.
func (s *Store) StrategyStats() ([]StrategyStats, error) {
	rows, err := s.db.Query(
		`WITH sides AS (
			SELECT player1 AS strategy, winner = 'player1' AS won, shots1 AS shots
			FROM matches WHERE end_reason = 'completed'
			UNION ALL
			SELECT player2, winner = 'player2', shots2
			FROM matches WHERE end_reason = 'completed'
		 )
		 SELECT strategy, COUNT(*), SUM(won),
		        AVG(CASE WHEN won THEN shots END),
		        MIN(CASE WHEN won THEN shots END)
		 FROM sides
		 GROUP BY strategy
		 ORDER BY strategy`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get strategy stats: %w", err)
	}
	defer rows.Close()

	var stats []StrategyStats
	for rows.Next() {
		var st StrategyStats
		var avg sql.NullFloat64
		var best sql.NullInt64
		if err := rows.Scan(&st.Strategy, &st.Games, &st.Wins, &avg, &best); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if st.Games > 0 {
			st.WinRate = float64(st.Wins) / float64(st.Games)
		}
		if avg.Valid {
			st.AvgShotsToWin = avg.Float64
		}
		if best.Valid {
			st.BestShotsToWin = int(best.Int64)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearMatches deletes all match history.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

const recordColumns = `id, match_id, player1, player2, winner, winner_strategy, end_reason,
		        turns, shots1, shots2, hits1, hits2, duration_ms, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var r Record
	var createdAt any
	err := sc.Scan(
		&r.ID,
		&r.MatchID,
		&r.Player1,
		&r.Player2,
		&r.Winner,
		&r.WinnerStrategy,
		&r.EndReason,
		&r.Turns,
		&r.Shots1,
		&r.Shots2,
		&r.Hits1,
		&r.Hits2,
		&r.DurationMs,
		&createdAt,
	)
	if err != nil {
		return Record{}, err
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		r.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			r.CreatedAt = parsed
		}
	}
	return r, nil
}
