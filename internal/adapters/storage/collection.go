// Package storage contains the JSON-collection repositories: typed CRUD
// over whole collections held in the key/value store. Every operation is
// read-modify-write of the entire collection for its key.
//
// The repositories deliberately validate nothing: no foreign keys, no
// required fields, no enum membership. That responsibility sits with
// callers (the validate package) before a command is dispatched.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/example/fleetdeck/internal/ports/secondary"
)

// newID generates a collection-unique entity id. The single-letter prefix
// identifies the entity kind (s/c/j/n) for human readers; the uuid body
// makes rapid successive creates collision-free.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// loadCollection decodes the collection stored under key. An absent key
// yields an empty collection. Corrupt data also yields an empty
// collection rather than an error; the next save rewrites the key.
func loadCollection[T any](ctx context.Context, store secondary.CollectionStore, key string) ([]T, error) {
	raw, err := store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// saveCollection serializes and writes the whole collection for key.
// Store failures propagate unwrapped decisions to the caller.
func saveCollection[T any](ctx context.Context, store secondary.CollectionStore, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := store.Save(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func strOr(p *string, prior string) string {
	if p != nil {
		return *p
	}
	return prior
}

func floatOr(p *float64, prior float64) float64 {
	if p != nil {
		return *p
	}
	return prior
}
