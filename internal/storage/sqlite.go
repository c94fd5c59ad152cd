// Package storage provides SQLite-based persistence for match history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID          int64
	Winner      string
	Players     []string // all seat names, in seat order
	PlayerCount int
	Turns       int // accepted commands over the whole match
	Duration    int // seconds from first to last command
	CreatedAt   time.Time
}

// PlayerRecord aggregates one player's results across matches.
type PlayerRecord struct {
	Name       string
	Wins       int
	LastPlayed time.Time
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

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			winner TEXT NOT NULL,
			players TEXT NOT NULL,
			player_count INTEGER NOT NULL,
			turns INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
		CREATE INDEX IF NOT EXISTS idx_matches_recent ON matches(created_at DESC);
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

// SaveMatch records a finished match. Returns the inserted record's ID.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (winner, players, player_count, turns, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Winner,
		strings.Join(rec.Players, ","),
		rec.PlayerCount,
		rec.Turns,
		rec.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, winner, players, player_count, turns, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		rec, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Standings returns win counts per player name, most wins first.
func (s *Store) Standings() ([]PlayerRecord, error) {
	rows, err := s.db.Query(
		`SELECT winner, COUNT(*), MAX(created_at)
		 FROM matches
		 GROUP BY winner
		 ORDER BY COUNT(*) DESC, winner ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query standings: %w", err)
	}
	defer rows.Close()

	var records []PlayerRecord
	for rows.Next() {
		var rec PlayerRecord
		var lastPlayed any
		if err := rows.Scan(&rec.Name, &rec.Wins, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.LastPlayed = parseTimestamp(lastPlayed)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// Wins returns the number of recorded wins for the given player name.
func (s *Store) Wins(name string) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM matches WHERE winner = ?",
		name,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query wins: %w", err)
	}
	return count, nil
}

// ClearHistory deletes all recorded matches.
func (s *Store) ClearHistory() error {
	if _, err := s.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}

func scanMatch(rows *sql.Rows) (MatchRecord, error) {
	var rec MatchRecord
	var players string
	var createdAt any
	if err := rows.Scan(&rec.ID, &rec.Winner, &players, &rec.PlayerCount,
		&rec.Turns, &rec.Duration, &createdAt); err != nil {
		return rec, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	if players != "" {
		rec.Players = strings.Split(players, ",")
	}
	rec.CreatedAt = parseTimestamp(createdAt)
	return rec, nil
}

// parseTimestamp handles the driver returning either time.Time or a
// datetime string.
func parseTimestamp(v any) time.Time {
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
