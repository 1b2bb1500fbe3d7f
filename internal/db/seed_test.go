package db_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/example/fleetdeck/internal/db"
	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

type mapStore struct {
	data map[string][]byte
}

func newMapStore() *mapStore { return &mapStore{data: make(map[string][]byte)} }

func (m *mapStore) Load(ctx context.Context, key string) ([]byte, error) {
	value, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (m *mapStore) Save(ctx context.Context, key string, value []byte) error {
	m.data[key] = value
	return nil
}

func (m *mapStore) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

var _ secondary.CollectionStore = (*mapStore)(nil)

func TestSeedFixtures(t *testing.T) {
	store := newMapStore()

	if err := db.SeedFixtures(context.Background(), store); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	for _, key := range []string{
		secondary.KeyUsers,
		secondary.KeyShips,
		secondary.KeyComponents,
		secondary.KeyJobs,
		secondary.KeyNotifications,
	} {
		if _, ok := store.data[key]; !ok {
			t.Errorf("expected %s seeded", key)
		}
	}

	var ships []models.Ship
	if err := json.Unmarshal(store.data[secondary.KeyShips], &ships); err != nil {
		t.Fatalf("seeded ships not valid JSON: %v", err)
	}
	if len(ships) != 3 || ships[0].Name != "Ever Given" {
		t.Errorf("unexpected seeded fleet: %+v", ships)
	}

	// The feed starts empty but present, so a fresh install lists zero
	// notifications instead of re-seeding on every start.
	if string(store.data[secondary.KeyNotifications]) != "[]" {
		t.Errorf("expected empty feed, got %s", store.data[secondary.KeyNotifications])
	}
}

func TestSeedFixtures_NeverOverwrites(t *testing.T) {
	store := newMapStore()
	store.data[secondary.KeyShips] = []byte(`[{"id":"s9","name":"My Ship"}]`)

	if err := db.SeedFixtures(context.Background(), store); err != nil {
		t.Fatalf("SeedFixtures failed: %v", err)
	}

	var ships []models.Ship
	if err := json.Unmarshal(store.data[secondary.KeyShips], &ships); err != nil {
		t.Fatalf("ships not valid JSON: %v", err)
	}
	if len(ships) != 1 || ships[0].Name != "My Ship" {
		t.Errorf("expected existing data untouched, got %+v", ships)
	}

	// Absent keys are still filled in.
	if _, ok := store.data[secondary.KeyJobs]; !ok {
		t.Error("expected jobs seeded alongside the preserved ships")
	}
}

func TestSeedFixtures_Idempotent(t *testing.T) {
	store := newMapStore()
	ctx := context.Background()

	if err := db.SeedFixtures(ctx, store); err != nil {
		t.Fatalf("first SeedFixtures failed: %v", err)
	}
	before := string(store.data[secondary.KeyJobs])

	if err := db.SeedFixtures(ctx, store); err != nil {
		t.Fatalf("second SeedFixtures failed: %v", err)
	}
	if string(store.data[secondary.KeyJobs]) != before {
		t.Error("re-seeding must not change existing collections")
	}
}
