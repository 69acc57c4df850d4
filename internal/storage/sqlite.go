// Package storage keeps a journal of finished rounds and derives player
// statistics from it. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies. The database lives in memory and is gone when the
// process exits.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MaxAttempts is the number of buckets in the guess distribution.
const MaxAttempts = 6

// Store manages the SQLite connection holding the round journal.
type Store struct {
	db *sql.DB
}

// Round is one finished round.
type Round struct {
	ID        string   // UUID assigned when recorded
	Player    string   // Local user or SSH user name
	Secret    string   // The word that was to be guessed
	Guesses   []string // Submitted words, in order
	Won       bool
	CreatedAt time.Time
}

// Stats contains aggregated results for one player.
type Stats struct {
	Player        string
	Played        int
	Wins          int
	CurrentStreak int
	MaxStreak     int
	Distribution  [MaxAttempts]int // Wins by number of guesses used
}

// WinPercent returns the share of rounds won, rounded down.
func (s Stats) WinPercent() int {
	if s.Played == 0 {
		return 0
	}
	return s.Wins * 100 / s.Played
}

// Open creates an empty in-memory journal and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			round_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			secret TEXT NOT NULL,
			guesses TEXT NOT NULL,
			attempts INTEGER NOT NULL,
			won INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(player, seq);
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

// RecordRound appends a finished round to the journal.
// Returns the ID assigned to the round.
func (s *Store) RecordRound(r Round) (string, error) {
	if r.Player == "" {
		return "", fmt.Errorf("storage: round has no player")
	}
	if len(r.Guesses) == 0 || len(r.Guesses) > MaxAttempts {
		return "", fmt.Errorf("storage: round has %d guesses, expected 1..%d", len(r.Guesses), MaxAttempts)
	}

	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO rounds (round_id, player, secret, guesses, attempts, won)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, r.Player, r.Secret, strings.Join(r.Guesses, " "), len(r.Guesses), r.Won,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save round: %w", err)
	}
	return id, nil
}

// RecentRounds retrieves the player's latest rounds, newest first.
func (s *Store) RecentRounds(player string, limit int) ([]Round, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT round_id, player, secret, guesses, won, created_at
		 FROM rounds
		 WHERE player = ?
		 ORDER BY seq DESC
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
		var guesses string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Player, &r.Secret, &guesses, &r.Won, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Guesses = strings.Fields(guesses)
		r.CreatedAt = parseTime(createdAt)
		rounds = append(rounds, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return rounds, nil
}

// Stats computes the player's statistics over the whole journal.
// Streaks count consecutive wins in recording order.
func (s *Store) Stats(player string) (*Stats, error) {
	rows, err := s.db.Query(
		`SELECT attempts, won FROM rounds WHERE player = ? ORDER BY seq`,
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	stats := &Stats{Player: player}
	for rows.Next() {
		var attempts int
		var won bool
		if err := rows.Scan(&attempts, &won); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}

		stats.Played++
		if !won {
			stats.CurrentStreak = 0
			continue
		}
		stats.Wins++
		stats.CurrentStreak++
		stats.MaxStreak = max(stats.MaxStreak, stats.CurrentStreak)
		if attempts >= 1 && attempts <= MaxAttempts {
			stats.Distribution[attempts-1]++
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// Players returns the number of distinct players with at least one round.
func (s *Store) Players() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(DISTINCT player) FROM rounds`).Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count players: %w", err)
	}
	return n, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
