package storage

import (
	"context"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

// UserRepository implements secondary.UserRepository over the collection
// store. The credential list is seeded once and read-only thereafter.
type UserRepository struct {
	store secondary.CollectionStore
}

// NewUserRepository creates a new user repository.
func NewUserRepository(store secondary.CollectionStore) *UserRepository {
	return &UserRepository{store: store}
}

// List returns every seeded credential.
func (r *UserRepository) List(ctx context.Context) ([]models.Credential, error) {
	return loadCollection[models.Credential](ctx, r.store, secondary.KeyUsers)
}

// ListByRole returns the credentials holding the given role.
func (r *UserRepository) ListByRole(ctx context.Context, role models.Role) ([]models.Credential, error) {
	users, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Credential
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

// Ensure UserRepository implements the interface
var _ secondary.UserRepository = (*UserRepository)(nil)
