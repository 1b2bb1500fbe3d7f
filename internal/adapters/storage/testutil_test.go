package storage_test

import (
	"context"
	"sync"

	"github.com/example/fleetdeck/internal/ports/secondary"
)

// memStore is an in-memory CollectionStore for repository tests. It keeps
// the repository logic under test without a database.
type memStore struct {
	mu   sync.Mutex
	data map[string][]byte

	// saves counts Save calls, for asserting skipped writes.
	saves int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string][]byte)}
}

func (m *memStore) Load(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (m *memStore) Save(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

var _ secondary.CollectionStore = (*memStore)(nil)
