// Package storage provides SQLite-based persistence for solutions, settings
// and the completion log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/solution"
)

const skinSetting = "skin"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Completion represents one solve of a level.
type Completion struct {
	ID        int64
	LevelID   uint64
	Moves     int
	Pushes    int
	CreatedAt time.Time
}

// LevelStats contains aggregated completions of one level.
type LevelStats struct {
	LevelID    uint64
	Attempts   int
	BestMoves  int
	BestPushes int // pushes of the best-moves completion
	LastSolved time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	dbPath, err := config.ExpandPath(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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
		CREATE TABLE IF NOT EXISTS solutions (
			level_id TEXT NOT NULL,
			format TEXT NOT NULL,
			data BLOB NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (level_id, format)
		);

		CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS completions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			moves INTEGER NOT NULL,
			pushes INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_completions_level_id ON completions(level_id);
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

// levelKey renders a fingerprint the way solution files are named.
func levelKey(id uint64) string {
	return fmt.Sprintf("%016x", id)
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// Load implements solution.Repository.
// Returns nil data if nothing is stored under key.
func (s *Store) Load(key solution.Key) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		"SELECT data FROM solutions WHERE level_id = ? AND format = ?",
		levelKey(key.ID), string(key.Format),
	).Scan(&data)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solution: %w", err)
	}
	if data == nil {
		data = []byte{}
	}
	return data, nil
}

// Save implements solution.Repository, replacing any previous record.
func (s *Store) Save(key solution.Key, data []byte) error {
	if data == nil {
		data = []byte{}
	}
	_, err := s.db.Exec(
		`INSERT INTO solutions (level_id, format, data, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(level_id, format) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		levelKey(key.ID), string(key.Format), data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save solution: %w", err)
	}
	return nil
}

// Ensure Store implements Repository
var _ solution.Repository = (*Store)(nil)

// Skin implements config.SkinStore.
// Returns "" if no skin has been selected.
func (s *Store) Skin() (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", skinSetting).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot query skin: %w", err)
	}
	return value, nil
}

// SetSkin implements config.SkinStore.
func (s *Store) SetSkin(name string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		skinSetting, name,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save skin: %w", err)
	}
	return nil
}

// Ensure Store implements SkinStore
var _ config.SkinStore = (*Store)(nil)

// SaveCompletion implements solution.CompletionSaver.
func (s *Store) SaveCompletion(levelID uint64, moves, pushes int) error {
	_, err := s.db.Exec(
		"INSERT INTO completions (level_id, moves, pushes) VALUES (?, ?, ?)",
		levelKey(levelID), moves, pushes,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save completion: %w", err)
	}
	return nil
}

// Ensure Store implements CompletionSaver
var _ solution.CompletionSaver = (*Store)(nil)

// Completions retrieves the most recent completions of a level.
func (s *Store) Completions(levelID uint64, limit int) ([]Completion, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, moves, pushes, created_at
		 FROM completions
		 WHERE level_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelKey(levelID), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query completions: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		e := Completion{LevelID: levelID}
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Moves, &e.Pushes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats retrieves aggregated completions of a level.
// Returns nil if the level was never solved.
func (s *Store) Stats(levelID uint64) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM completions WHERE level_id = ?",
		levelKey(levelID),
	).Scan(&stats.Attempts)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count completions: %w", err)
	}
	if stats.Attempts == 0 {
		return nil, nil
	}

	// Best by moves, then pushes
	err = s.db.QueryRow(
		`SELECT moves, pushes FROM completions
		 WHERE level_id = ?
		 ORDER BY moves ASC, pushes ASC
		 LIMIT 1`,
		levelKey(levelID),
	).Scan(&stats.BestMoves, &stats.BestPushes)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best completion: %w", err)
	}

	// Get last solved
	var lastSolved any
	err = s.db.QueryRow(
		"SELECT created_at FROM completions WHERE level_id = ? ORDER BY id DESC LIMIT 1",
		levelKey(levelID),
	).Scan(&lastSolved)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get last solved: %w", err)
	}
	stats.LastSolved = parseTime(lastSolved)

	return stats, nil
}

// ClearCompletions deletes the completion log of a level.
func (s *Store) ClearCompletions(levelID uint64) error {
	_, err := s.db.Exec("DELETE FROM completions WHERE level_id = ?", levelKey(levelID))
	if err != nil {
		return fmt.Errorf("storage: cannot clear completions: %w", err)
	}
	return nil
}
