package primary

import (
	"context"

	"github.com/example/fleetdeck/internal/models"
)

// FleetService defines the primary port for ship and component operations.
//
// The service performs no field validation and no referential-integrity
// checks; callers run the validate package before dispatching commands.
// Updating or deleting an id that does not exist is a silent no-op.
type FleetService interface {
	ListShips(ctx context.Context) ([]models.Ship, error)
	GetShip(ctx context.Context, id string) (*models.Ship, error)
	AddShip(ctx context.Context, req CreateShipRequest) (*models.Ship, error)
	UpdateShip(ctx context.Context, id string, req UpdateShipRequest) (*models.Ship, error)

	// DeleteShip removes the ship record only. Components and jobs that
	// reference it are left in place; their ship lookups resolve to absent
	// display values afterwards.
	DeleteShip(ctx context.Context, id string) error

	ListComponents(ctx context.Context) ([]models.Component, error)
	ListComponentsByShip(ctx context.Context, shipID string) ([]models.Component, error)
	GetComponent(ctx context.Context, id string) (*models.Component, error)
	AddComponent(ctx context.Context, req CreateComponentRequest) (*models.Component, error)
	UpdateComponent(ctx context.Context, id string, req UpdateComponentRequest) (*models.Component, error)
	DeleteComponent(ctx context.Context, id string) error
}

// CreateShipRequest contains the fields for a new ship (id is generated).
type CreateShipRequest struct {
	Name             string
	IMO              string
	Flag             string
	Status           string
	RegistrationDate string
	Description      string
}

// UpdateShipRequest is a partial ship update; nil fields are untouched.
type UpdateShipRequest struct {
	Name             *string
	IMO              *string
	Flag             *string
	Status           *string
	RegistrationDate *string
	Description      *string
}

// CreateComponentRequest contains the fields for a new component.
type CreateComponentRequest struct {
	ShipID              string
	Name                string
	SerialNumber        string
	InstallDate         string
	LastMaintenanceDate string
	NextMaintenanceDate string
	Status              string
	Description         string
}

// UpdateComponentRequest is a partial component update.
type UpdateComponentRequest struct {
	ShipID              *string
	Name                *string
	SerialNumber        *string
	InstallDate         *string
	LastMaintenanceDate *string
	NextMaintenanceDate *string
	Status              *string
	Description         *string
}
