// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application
// drives external systems.
package secondary

import (
	"context"

	"github.com/example/fleetdeck/internal/models"
)

// Collection keys in the key/value store. Each key holds one serialized
// collection; every save rewrites the whole collection for that key.
const (
	KeyUsers         = "ship_maintenance_users"
	KeyShips         = "ship_maintenance_ships"
	KeyComponents    = "ship_maintenance_components"
	KeyJobs          = "ship_maintenance_jobs"
	KeyNotifications = "ship_maintenance_notifications"
	KeyCurrentUser   = "ship_maintenance_current_user"
)

// CollectionStore is the secondary port for the byte-oriented key/value
// area backing all collections.
type CollectionStore interface {
	// Load returns the raw value for key, or (nil, nil) when absent.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save durably writes the raw value for key, replacing any prior value.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes the value for key. Absent keys are a no-op.
	Delete(ctx context.Context, key string) error
}

// ShipRepository defines the secondary port for ship persistence.
// Update and Delete silently no-op when the id does not exist.
type ShipRepository interface {
	List(ctx context.Context) ([]models.Ship, error)
	GetByID(ctx context.Context, id string) (*models.Ship, error)
	Add(ctx context.Context, ship models.Ship) (*models.Ship, error)
	Update(ctx context.Context, id string, patch ShipPatch) (*models.Ship, error)
	Delete(ctx context.Context, id string) error
}

// ShipPatch is a partial ship update. Nil fields keep their prior value.
type ShipPatch struct {
	Name             *string
	IMO              *string
	Flag             *string
	Status           *string
	RegistrationDate *string
	Description      *string
}

// ComponentRepository defines the secondary port for component persistence.
type ComponentRepository interface {
	List(ctx context.Context) ([]models.Component, error)
	GetByID(ctx context.Context, id string) (*models.Component, error)
	ListByShip(ctx context.Context, shipID string) ([]models.Component, error)
	Add(ctx context.Context, component models.Component) (*models.Component, error)
	Update(ctx context.Context, id string, patch ComponentPatch) (*models.Component, error)
	Delete(ctx context.Context, id string) error
}

// ComponentPatch is a partial component update. Nil fields keep their
// prior value.
type ComponentPatch struct {
	ShipID              *string
	Name                *string
	SerialNumber        *string
	InstallDate         *string
	LastMaintenanceDate *string
	NextMaintenanceDate *string
	Status              *string
	Description         *string
}

// JobRepository defines the secondary port for job persistence.
type JobRepository interface {
	List(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	ListByShip(ctx context.Context, shipID string) ([]models.Job, error)
	ListByComponent(ctx context.Context, componentID string) ([]models.Job, error)
	Add(ctx context.Context, job models.Job) (*models.Job, error)
	Update(ctx context.Context, id string, patch JobPatch) (*models.Job, error)
	Delete(ctx context.Context, id string) error
}

// JobPatch is a partial job update. Nil fields keep their prior value.
type JobPatch struct {
	ComponentID        *string
	ShipID             *string
	Type               *string
	Priority           *string
	Status             *string
	AssignedEngineerID *string
	ScheduledDate      *string
	CompletedDate      *string
	Description        *string
	EstimatedHours     *float64
	ActualHours        *float64
}

// NotificationRepository defines the secondary port for the notification
// feed. The feed is append-only from the caller's point of view; new
// entries go to the front.
type NotificationRepository interface {
	List(ctx context.Context) ([]models.Notification, error)
	Prepend(ctx context.Context, n models.Notification) (*models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

// UserRepository exposes the seeded credential list read-only. There is no
// add/update/delete surface for users.
type UserRepository interface {
	List(ctx context.Context) ([]models.Credential, error)
	ListByRole(ctx context.Context, role models.Role) ([]models.Credential, error)
}

// SessionStore persists the current authenticated user across process
// restarts.
type SessionStore interface {
	// CurrentUser returns the persisted session user, or (nil, nil) when
	// nobody is logged in.
	CurrentUser(ctx context.Context) (*models.User, error)
	SetCurrentUser(ctx context.Context, user models.User) error
	ClearCurrentUser(ctx context.Context) error
}
