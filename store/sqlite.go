package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/glebarez/go-sqlite"
)

// SQLite is a Store backed by a single-table SQLite database, the same
// driver and WAL setup the teacher repo uses for its own cache provider.
type SQLite struct {
	db         *sql.DB
	writeMutex *sync.Mutex
}

// NewSQLite opens (creating if needed) a SQLite-backed Store at path.
// Use ":memory:" for an ephemeral, process-local database.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		key TEXT PRIMARY KEY,
		content_type TEXT NOT NULL,
		body BLOB NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("store: create table: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("store: set WAL mode: %w", err)
	}
	return &SQLite{db: db, writeMutex: &sync.Mutex{}}, nil
}

func (s *SQLite) Put(ctx context.Context, key, contentType string, body []byte) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO blobs (key, content_type, body) VALUES (?, ?, ?)",
		key, contentType, body)
	if err != nil {
		return fmt.Errorf("store: sqlite put %s: %w", key, err)
	}
	return nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, string, error) {
	var body []byte
	var contentType string
	err := s.db.QueryRowContext(ctx, "SELECT content_type, body FROM blobs WHERE key = ?", key).
		Scan(&contentType, &body)
	if err == sql.ErrNoRows {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", fmt.Errorf("store: sqlite get %s: %w", key, err)
	}
	return body, contentType, nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()
	if _, err := s.db.ExecContext(ctx, "DELETE FROM blobs WHERE key = ?", key); err != nil {
		return fmt.Errorf("store: sqlite delete %s: %w", key, err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLite) Close() error {
	return s.db.Close()
}
