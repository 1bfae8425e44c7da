// ABOUTME: SQLite implementation of ModeStore using modernc.org/sqlite.
// ABOUTME: One row per user with automatic schema creation and WAL mode.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/projectnostradamus/amenbot/internal/mode"
)

// SQLiteStore implements ModeStore backed by a local SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore opens (or creates) the database at path. Parent directories
// are created if needed and the schema is applied automatically.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "store")

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// WAL keeps concurrent reads cheap while writes stay synchronous.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db, logger: logger}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("SQLite mode store initialized", "path", path)
	return s, nil
}

func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS user_modes (
			user_id INTEGER PRIMARY KEY,
			mode TEXT NOT NULL,
			updated_at DATETIME NOT NULL
		);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Get returns the user's stored mode, defaulting to mode.None when the user
// has no row or the stored value is no longer part of the mode set.
func (s *SQLiteStore) Get(ctx context.Context, userID int64) (mode.Mode, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		"SELECT mode FROM user_modes WHERE user_id = ?", userID).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return mode.None, nil
	}
	if err != nil {
		return mode.None, fmt.Errorf("reading mode for user %d: %w", userID, err)
	}

	m, ok := mode.Parse(raw)
	if !ok {
		s.logger.Warn("stored mode no longer recognized, treating as none",
			"user_id", userID, "mode", raw)
		return mode.None, nil
	}
	return m, nil
}

// Set durably writes the user's mode. The write completes before Set
// returns, so a confirmation sent afterwards never promises state that a
// crash could lose.
func (s *SQLiteStore) Set(ctx context.Context, userID int64, m mode.Mode) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_modes (user_id, mode, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			mode = excluded.mode,
			updated_at = excluded.updated_at
	`, userID, string(m), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("writing mode for user %d: %w", userID, err)
	}
	return nil
}

// Clear removes the user's mode record; subsequent Gets return mode.None.
func (s *SQLiteStore) Clear(ctx context.Context, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM user_modes WHERE user_id = ?", userID)
	if err != nil {
		return fmt.Errorf("clearing mode for user %d: %w", userID, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
