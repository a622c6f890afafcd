// Package storage provides SQLite-based persistence for maze progress: the
// highest completed level of each profile.
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

// DefaultPath is where the CLI saves progress unless --db overrides it.
const DefaultPath = "~/.maze/maze.db"

// Store manages the SQLite database connection for progress persistence.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// Progress is the highest completed level of one profile.
type Progress struct {
	Profile   string
	Highest   int
	UpdatedAt time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SQLite allows a single writer; SSH sessions share this handle.
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
		CREATE TABLE IF NOT EXISTS progress (
			profile TEXT PRIMARY KEY,
			highest INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// HighestCompleted returns the highest completed level for the profile.
// Returns 0 if the profile has no progress yet.
func (s *Store) HighestCompleted(profile string) (int, error) {
	var highest int
	err := s.db.QueryRow(
		"SELECT highest FROM progress WHERE profile = ?",
		profile,
	).Scan(&highest)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	return highest, nil
}

// RecordCompletion marks a level as completed. The stored value only ever
// grows; the resulting highest level is returned.
func (s *Store) RecordCompletion(profile string, level int) (int, error) {
	_, err := s.db.Exec(
		`INSERT INTO progress (profile, highest) VALUES (?, ?)
		 ON CONFLICT(profile) DO UPDATE SET
		   highest = MAX(highest, excluded.highest),
		   updated_at = CURRENT_TIMESTAMP`,
		profile, level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record completion: %w", err)
	}
	return s.HighestCompleted(profile)
}

// ResetProgress deletes the progress of the profile.
func (s *Store) ResetProgress(profile string) error {
	if _, err := s.db.Exec("DELETE FROM progress WHERE profile = ?", profile); err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	return nil
}

// AllProgress lists every profile, most advanced first.
func (s *Store) AllProgress() ([]Progress, error) {
	rows, err := s.db.Query(
		`SELECT profile, highest, updated_at
		 FROM progress
		 ORDER BY highest DESC, profile ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	var entries []Progress
	for rows.Next() {
		var p Progress
		var updatedAt any
		if err := rows.Scan(&p.Profile, &p.Highest, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// parseTime handles both time.Time and string datetime columns.
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
