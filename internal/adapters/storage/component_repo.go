package storage

import (
	"context"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

// ComponentRepository implements secondary.ComponentRepository over the
// collection store.
type ComponentRepository struct {
	store secondary.CollectionStore
}

// NewComponentRepository creates a new component repository.
func NewComponentRepository(store secondary.CollectionStore) *ComponentRepository {
	return &ComponentRepository{store: store}
}

// List returns every component in collection order.
func (r *ComponentRepository) List(ctx context.Context) ([]models.Component, error) {
	return loadCollection[models.Component](ctx, r.store, secondary.KeyComponents)
}

// GetByID returns the component with the given id, or (nil, nil) when
// absent.
func (r *ComponentRepository) GetByID(ctx context.Context, id string) (*models.Component, error) {
	components, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range components {
		if components[i].ID == id {
			return &components[i], nil
		}
	}
	return nil, nil
}

// ListByShip returns the components installed on the given ship.
func (r *ComponentRepository) ListByShip(ctx context.Context, shipID string) ([]models.Component, error) {
	components, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Component
	for _, c := range components {
		if c.ShipID == shipID {
			out = append(out, c)
		}
	}
	return out, nil
}

// Add assigns a fresh id and appends the component.
func (r *ComponentRepository) Add(ctx context.Context, component models.Component) (*models.Component, error) {
	components, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	component.ID = newID("c")
	components = append(components, component)
	if err := saveCollection(ctx, r.store, secondary.KeyComponents, components); err != nil {
		return nil, err
	}
	return &component, nil
}

// Update shallow-merges the patch into the component with the given id.
// An unknown id is a silent no-op returning (nil, nil).
func (r *ComponentRepository) Update(ctx context.Context, id string, patch secondary.ComponentPatch) (*models.Component, error) {
	components, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range components {
		if components[i].ID != id {
			continue
		}
		c := &components[i]
		c.ShipID = strOr(patch.ShipID, c.ShipID)
		c.Name = strOr(patch.Name, c.Name)
		c.SerialNumber = strOr(patch.SerialNumber, c.SerialNumber)
		c.InstallDate = strOr(patch.InstallDate, c.InstallDate)
		c.LastMaintenanceDate = strOr(patch.LastMaintenanceDate, c.LastMaintenanceDate)
		c.NextMaintenanceDate = strOr(patch.NextMaintenanceDate, c.NextMaintenanceDate)
		c.Status = strOr(patch.Status, c.Status)
		c.Description = strOr(patch.Description, c.Description)
		if err := saveCollection(ctx, r.store, secondary.KeyComponents, components); err != nil {
			return nil, err
		}
		merged := *c
		return &merged, nil
	}
	return nil, nil
}

// Delete removes the component with the given id. Unknown ids are a
// no-op. Jobs referencing the component are not touched.
func (r *ComponentRepository) Delete(ctx context.Context, id string) error {
	components, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := components[:0]
	for _, c := range components {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(components) {
		return nil
	}
	return saveCollection(ctx, r.store, secondary.KeyComponents, kept)
}

// Ensure ComponentRepository implements the interface
var _ secondary.ComponentRepository = (*ComponentRepository)(nil)
