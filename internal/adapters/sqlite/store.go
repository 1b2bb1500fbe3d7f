// Package sqlite contains the SQLite implementation of the collection
// store. Collections are stored as whole serialized values in a single
// key/value table; there is no per-record SQL surface.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/fleetdeck/internal/ports/secondary"
)

// Store implements secondary.CollectionStore with SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a new SQLite collection store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Load returns the raw value for key, or (nil, nil) when the key is absent.
func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		"SELECT value FROM collections WHERE key = ?", key,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load collection %s: %w", key, err)
	}
	return []byte(value), nil
}

// Save writes the raw value for key, replacing any prior value. A failed
// write propagates to the caller; it is never retried.
func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO collections (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP) ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP",
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w", key, err)
	}
	return nil
}

// Delete removes the value for key. Absent keys are a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM collections WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", key, err)
	}
	return nil
}

// Ensure Store implements the interface
var _ secondary.CollectionStore = (*Store)(nil)
