package fallback

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteStore persists buckets as opaque payloads in a single sqlite table.
type SQLiteStore struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteStore opens (creating if needed) the fallback database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// ReadCache returns the payload stored under key, and whether one exists.
func (s *SQLiteStore) ReadCache(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var payload []byte
	err := s.db.QueryRow(`SELECT payload FROM state WHERE bucket = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read bucket %s: %w", key, err)
	}

	return payload, true, nil
}

// WriteCache stores payload under key, replacing any previous value.
func (s *SQLiteStore) WriteCache(key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`INSERT INTO state (bucket, payload) VALUES (?, ?)
		ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`, key, payload)
	if err != nil {
		return fmt.Errorf("write bucket %s: %w", key, err)
	}

	return nil
}

// Delete removes the payload stored under key, if any.
func (s *SQLiteStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM state WHERE bucket = ?`, key); err != nil {
		return fmt.Errorf("delete bucket %s: %w", key, err)
	}

	return nil
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
