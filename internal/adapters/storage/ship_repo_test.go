package storage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/example/fleetdeck/internal/adapters/storage"
	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

func strPtr(s string) *string { return &s }

func TestShipRepository_AddAndGet(t *testing.T) {
	repo := storage.NewShipRepository(newMemStore())
	ctx := context.Background()

	ship, err := repo.Add(ctx, models.Ship{Name: "Ever Given", IMO: "9811000", Flag: "Panama", Status: models.ShipStatusActive})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if ship.ID == "" {
		t.Fatal("expected generated id")
	}
	if !strings.HasPrefix(ship.ID, "s-") {
		t.Errorf("expected s- prefixed id, got %q", ship.ID)
	}

	got, err := repo.GetByID(ctx, ship.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got == nil || got.Name != "Ever Given" {
		t.Errorf("expected round-trip, got %+v", got)
	}
}

func TestShipRepository_IDsAreUnique(t *testing.T) {
	repo := storage.NewShipRepository(newMemStore())
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		ship, err := repo.Add(ctx, models.Ship{Name: "Ship"})
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		if seen[ship.ID] {
			t.Fatalf("duplicate id %q", ship.ID)
		}
		seen[ship.ID] = true
	}
}

func TestShipRepository_GetByID_Absent(t *testing.T) {
	repo := storage.NewShipRepository(newMemStore())

	ship, err := repo.GetByID(context.Background(), "s-missing")
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if ship != nil {
		t.Errorf("expected nil for absent id, got %+v", ship)
	}
}

func TestShipRepository_Update_ShallowMerge(t *testing.T) {
	repo := storage.NewShipRepository(newMemStore())
	ctx := context.Background()

	ship, err := repo.Add(ctx, models.Ship{Name: "Ever Given", IMO: "9811000", Flag: "Panama", Status: models.ShipStatusActive})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	updated, err := repo.Update(ctx, ship.ID, secondary.ShipPatch{
		Status: strPtr(models.ShipStatusDecommissioned),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != models.ShipStatusDecommissioned {
		t.Errorf("expected status patched, got %s", updated.Status)
	}
	if updated.Name != "Ever Given" || updated.IMO != "9811000" {
		t.Error("expected nil patch fields to keep prior values")
	}

	// The merge is persisted, not just returned.
	got, err := repo.GetByID(ctx, ship.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.ShipStatusDecommissioned {
		t.Errorf("expected persisted status, got %s", got.Status)
	}
}

func TestShipRepository_Update_UnknownID(t *testing.T) {
	store := newMemStore()
	repo := storage.NewShipRepository(store)

	ship, err := repo.Update(context.Background(), "s-missing", secondary.ShipPatch{Name: strPtr("Ghost")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if ship != nil {
		t.Errorf("expected nil for unknown id, got %+v", ship)
	}
	if store.saves != 0 {
		t.Errorf("no-op update must not write, got %d saves", store.saves)
	}
}

func TestShipRepository_Delete(t *testing.T) {
	store := newMemStore()
	repo := storage.NewShipRepository(store)
	ctx := context.Background()

	a, err := repo.Add(ctx, models.Ship{Name: "A"})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := repo.Add(ctx, models.Ship{Name: "B"}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	ships, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ships) != 1 || ships[0].Name != "B" {
		t.Errorf("expected only B left, got %+v", ships)
	}

	// Unknown ids are a no-op and skip the write entirely.
	saves := store.saves
	if err := repo.Delete(ctx, a.ID); err != nil {
		t.Fatalf("repeat Delete failed: %v", err)
	}
	if store.saves != saves {
		t.Error("no-op delete must not write")
	}
}

func TestShipRepository_CorruptCollectionReadsEmpty(t *testing.T) {
	store := newMemStore()
	store.data[secondary.KeyShips] = []byte("{not json")
	repo := storage.NewShipRepository(store)

	ships, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(ships) != 0 {
		t.Errorf("expected corrupt data to read as empty, got %+v", ships)
	}
}
