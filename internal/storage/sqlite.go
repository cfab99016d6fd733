// Package storage keeps finished rounds in an in-memory SQLite database for
// the lifetime of the process. Uses the pure-Go modernc.org/sqlite driver to
// avoid CGO dependencies. Nothing is written to disk.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-wordle/internal/wordle"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("storage: store is closed")

// Store manages the in-memory database of finished rounds.
// It is safe for concurrent use by SSH sessions.
type Store struct {
	db     *sql.DB
	closed atomic.Bool
}

// Round represents a single finished round.
type Round struct {
	ID        int64
	Player    string
	Secret    string
	Won       bool
	Guesses   int // Number of guesses used
	CreatedAt time.Time
}

// Stats contains aggregated statistics for one player.
type Stats struct {
	Player        string
	Played        int
	Wins          int
	CurrentStreak int
	MaxStreak     int
	Distribution  [wordle.MaxGuesses]int // Wins by number of guesses (index 0 = one guess)
}

// WinPercent returns the share of rounds won, 0-100.
func (s Stats) WinPercent() int {
	if s.Played == 0 {
		return 0
	}
	return s.Wins * 100 / s.Played
}

// Open creates a fresh in-memory database and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Every connection to :memory: is a separate database; keep exactly one.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			secret TEXT NOT NULL,
			won INTEGER NOT NULL,
			guesses INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player, id DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database; all recorded rounds are discarded.
func (s *Store) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// RecordRound stores a finished round.
// Returns the ID of the inserted record.
func (s *Store) RecordRound(player, secret string, won bool, guesses int) (int64, error) {
	if s.closed.Load() {
		return 0, ErrClosed
	}
	if guesses < 1 || guesses > wordle.MaxGuesses {
		return 0, fmt.Errorf("storage: guesses %d out of range", guesses)
	}

	result, err := s.db.Exec(
		"INSERT INTO rounds (player, secret, won, guesses) VALUES (?, ?, ?, ?)",
		player, secret, won, guesses,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRounds retrieves the latest rounds for a player, newest first.
func (s *Store) RecentRounds(player string, limit int) ([]Round, error) {
	if s.closed.Load() {
		return nil, ErrClosed
	}
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, player, secret, won, guesses, created_at
		 FROM rounds
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []Round
	for rows.Next() {
		var r Round
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Secret, &r.Won, &r.Guesses, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Stats aggregates all rounds recorded for a player.
func (s *Store) Stats(player string) (Stats, error) {
	stats := Stats{Player: player}
	if s.closed.Load() {
		return stats, ErrClosed
	}

	rows, err := s.db.Query(
		`SELECT won, guesses FROM rounds WHERE player = ? ORDER BY id ASC`,
		player,
	)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	streak := 0
	for rows.Next() {
		var won bool
		var guesses int
		if err := rows.Scan(&won, &guesses); err != nil {
			return stats, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		stats.Played++
		if !won {
			streak = 0
			continue
		}
		stats.Wins++
		streak++
		if streak > stats.MaxStreak {
			stats.MaxStreak = streak
		}
		if guesses >= 1 && guesses <= wordle.MaxGuesses {
			stats.Distribution[guesses-1]++
		}
	}

	if err := rows.Err(); err != nil {
		return stats, fmt.Errorf("storage: row iteration error: %w", err)
	}

	stats.CurrentStreak = streak
	return stats, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
