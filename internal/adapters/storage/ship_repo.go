package storage

import (
	"context"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

// ShipRepository implements secondary.ShipRepository over the collection
// store.
type ShipRepository struct {
	store secondary.CollectionStore
}

// NewShipRepository creates a new ship repository.
func NewShipRepository(store secondary.CollectionStore) *ShipRepository {
	return &ShipRepository{store: store}
}

// List returns every ship in collection order.
func (r *ShipRepository) List(ctx context.Context) ([]models.Ship, error) {
	return loadCollection[models.Ship](ctx, r.store, secondary.KeyShips)
}

// GetByID returns the ship with the given id, or (nil, nil) when absent.
func (r *ShipRepository) GetByID(ctx context.Context, id string) (*models.Ship, error) {
	ships, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ships {
		if ships[i].ID == id {
			return &ships[i], nil
		}
	}
	return nil, nil
}

// Add assigns a fresh id and appends the ship.
func (r *ShipRepository) Add(ctx context.Context, ship models.Ship) (*models.Ship, error) {
	ships, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	ship.ID = newID("s")
	ships = append(ships, ship)
	if err := saveCollection(ctx, r.store, secondary.KeyShips, ships); err != nil {
		return nil, err
	}
	return &ship, nil
}

// Update shallow-merges the patch into the ship with the given id.
// An unknown id is a silent no-op returning (nil, nil).
func (r *ShipRepository) Update(ctx context.Context, id string, patch secondary.ShipPatch) (*models.Ship, error) {
	ships, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range ships {
		if ships[i].ID != id {
			continue
		}
		s := &ships[i]
		s.Name = strOr(patch.Name, s.Name)
		s.IMO = strOr(patch.IMO, s.IMO)
		s.Flag = strOr(patch.Flag, s.Flag)
		s.Status = strOr(patch.Status, s.Status)
		s.RegistrationDate = strOr(patch.RegistrationDate, s.RegistrationDate)
		s.Description = strOr(patch.Description, s.Description)
		if err := saveCollection(ctx, r.store, secondary.KeyShips, ships); err != nil {
			return nil, err
		}
		merged := *s
		return &merged, nil
	}
	return nil, nil
}

// Delete removes the ship with the given id. Unknown ids are a no-op, so
// a second delete leaves the collection unchanged. Dependent components
// and jobs are not touched.
func (r *ShipRepository) Delete(ctx context.Context, id string) error {
	ships, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := ships[:0]
	for _, s := range ships {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(ships) {
		return nil
	}
	return saveCollection(ctx, r.store, secondary.KeyShips, kept)
}

// Ensure ShipRepository implements the interface
var _ secondary.ShipRepository = (*ShipRepository)(nil)
