package app

import (
	"context"
	"fmt"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

// mockShipRepository is a slice-backed ship repository for service tests.
type mockShipRepository struct {
	ships   []models.Ship
	nextID  int
	listErr error
}

func (m *mockShipRepository) List(ctx context.Context) ([]models.Ship, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.ships, nil
}

func (m *mockShipRepository) GetByID(ctx context.Context, id string) (*models.Ship, error) {
	for i := range m.ships {
		if m.ships[i].ID == id {
			return &m.ships[i], nil
		}
	}
	return nil, nil
}

func (m *mockShipRepository) Add(ctx context.Context, ship models.Ship) (*models.Ship, error) {
	m.nextID++
	ship.ID = fmt.Sprintf("s-%d", m.nextID)
	m.ships = append(m.ships, ship)
	return &ship, nil
}

func (m *mockShipRepository) Update(ctx context.Context, id string, patch secondary.ShipPatch) (*models.Ship, error) {
	for i := range m.ships {
		if m.ships[i].ID != id {
			continue
		}
		s := &m.ships[i]
		if patch.Name != nil {
			s.Name = *patch.Name
		}
		if patch.IMO != nil {
			s.IMO = *patch.IMO
		}
		if patch.Flag != nil {
			s.Flag = *patch.Flag
		}
		if patch.Status != nil {
			s.Status = *patch.Status
		}
		if patch.RegistrationDate != nil {
			s.RegistrationDate = *patch.RegistrationDate
		}
		if patch.Description != nil {
			s.Description = *patch.Description
		}
		merged := *s
		return &merged, nil
	}
	return nil, nil
}

func (m *mockShipRepository) Delete(ctx context.Context, id string) error {
	kept := m.ships[:0]
	for _, s := range m.ships {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	m.ships = kept
	return nil
}

// mockComponentRepository is a slice-backed component repository.
type mockComponentRepository struct {
	components []models.Component
	nextID     int
}

func (m *mockComponentRepository) List(ctx context.Context) ([]models.Component, error) {
	return m.components, nil
}

func (m *mockComponentRepository) GetByID(ctx context.Context, id string) (*models.Component, error) {
	for i := range m.components {
		if m.components[i].ID == id {
			return &m.components[i], nil
		}
	}
	return nil, nil
}

func (m *mockComponentRepository) ListByShip(ctx context.Context, shipID string) ([]models.Component, error) {
	var out []models.Component
	for _, c := range m.components {
		if c.ShipID == shipID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockComponentRepository) Add(ctx context.Context, component models.Component) (*models.Component, error) {
	m.nextID++
	component.ID = fmt.Sprintf("c-%d", m.nextID)
	m.components = append(m.components, component)
	return &component, nil
}

func (m *mockComponentRepository) Update(ctx context.Context, id string, patch secondary.ComponentPatch) (*models.Component, error) {
	for i := range m.components {
		if m.components[i].ID != id {
			continue
		}
		c := &m.components[i]
		if patch.ShipID != nil {
			c.ShipID = *patch.ShipID
		}
		if patch.Name != nil {
			c.Name = *patch.Name
		}
		if patch.SerialNumber != nil {
			c.SerialNumber = *patch.SerialNumber
		}
		if patch.InstallDate != nil {
			c.InstallDate = *patch.InstallDate
		}
		if patch.LastMaintenanceDate != nil {
			c.LastMaintenanceDate = *patch.LastMaintenanceDate
		}
		if patch.NextMaintenanceDate != nil {
			c.NextMaintenanceDate = *patch.NextMaintenanceDate
		}
		if patch.Status != nil {
			c.Status = *patch.Status
		}
		if patch.Description != nil {
			c.Description = *patch.Description
		}
		merged := *c
		return &merged, nil
	}
	return nil, nil
}

func (m *mockComponentRepository) Delete(ctx context.Context, id string) error {
	kept := m.components[:0]
	for _, c := range m.components {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	m.components = kept
	return nil
}

// mockJobRepository is a slice-backed job repository.
type mockJobRepository struct {
	jobs   []models.Job
	nextID int
}

func (m *mockJobRepository) List(ctx context.Context) ([]models.Job, error) {
	return m.jobs, nil
}

func (m *mockJobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			found := m.jobs[i]
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockJobRepository) ListByShip(ctx context.Context, shipID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range m.jobs {
		if j.ShipID == shipID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepository) ListByComponent(ctx context.Context, componentID string) ([]models.Job, error) {
	var out []models.Job
	for _, j := range m.jobs {
		if j.ComponentID == componentID {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockJobRepository) Add(ctx context.Context, job models.Job) (*models.Job, error) {
	m.nextID++
	job.ID = fmt.Sprintf("j-%d", m.nextID)
	m.jobs = append(m.jobs, job)
	return &job, nil
}

func (m *mockJobRepository) Update(ctx context.Context, id string, patch secondary.JobPatch) (*models.Job, error) {
	for i := range m.jobs {
		if m.jobs[i].ID != id {
			continue
		}
		j := &m.jobs[i]
		if patch.ComponentID != nil {
			j.ComponentID = *patch.ComponentID
		}
		if patch.ShipID != nil {
			j.ShipID = *patch.ShipID
		}
		if patch.Type != nil {
			j.Type = *patch.Type
		}
		if patch.Priority != nil {
			j.Priority = *patch.Priority
		}
		if patch.Status != nil {
			j.Status = *patch.Status
		}
		if patch.AssignedEngineerID != nil {
			j.AssignedEngineerID = *patch.AssignedEngineerID
		}
		if patch.ScheduledDate != nil {
			j.ScheduledDate = *patch.ScheduledDate
		}
		if patch.CompletedDate != nil {
			j.CompletedDate = *patch.CompletedDate
		}
		if patch.Description != nil {
			j.Description = *patch.Description
		}
		if patch.EstimatedHours != nil {
			j.EstimatedHours = *patch.EstimatedHours
		}
		if patch.ActualHours != nil {
			j.ActualHours = *patch.ActualHours
		}
		merged := *j
		return &merged, nil
	}
	return nil, nil
}

func (m *mockJobRepository) Delete(ctx context.Context, id string) error {
	kept := m.jobs[:0]
	for _, j := range m.jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	m.jobs = kept
	return nil
}

// mockNotificationRepository is a slice-backed notification feed.
type mockNotificationRepository struct {
	feed   []models.Notification
	nextID int
}

func (m *mockNotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	return m.feed, nil
}

func (m *mockNotificationRepository) Prepend(ctx context.Context, n models.Notification) (*models.Notification, error) {
	m.nextID++
	n.ID = fmt.Sprintf("n-%d", m.nextID)
	m.feed = append([]models.Notification{n}, m.feed...)
	return &n, nil
}

func (m *mockNotificationRepository) MarkRead(ctx context.Context, id string) error {
	for i := range m.feed {
		if m.feed[i].ID == id {
			m.feed[i].Read = true
		}
	}
	return nil
}

// mockUserRepository serves a fixed credential list.
type mockUserRepository struct {
	creds   []models.Credential
	listErr error
}

func (m *mockUserRepository) List(ctx context.Context) ([]models.Credential, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.creds, nil
}

func (m *mockUserRepository) ListByRole(ctx context.Context, role models.Role) ([]models.Credential, error) {
	var out []models.Credential
	for _, c := range m.creds {
		if c.Role == role {
			out = append(out, c)
		}
	}
	return out, nil
}

// mockSessionStore holds the session user in memory.
type mockSessionStore struct {
	user *models.User
}

func (m *mockSessionStore) CurrentUser(ctx context.Context) (*models.User, error) {
	return m.user, nil
}

func (m *mockSessionStore) SetCurrentUser(ctx context.Context, user models.User) error {
	m.user = &user
	return nil
}

func (m *mockSessionStore) ClearCurrentUser(ctx context.Context) error {
	m.user = nil
	return nil
}

// Compile-time checks that the mocks satisfy the secondary ports.
var (
	_ secondary.ShipRepository         = (*mockShipRepository)(nil)
	_ secondary.ComponentRepository    = (*mockComponentRepository)(nil)
	_ secondary.JobRepository          = (*mockJobRepository)(nil)
	_ secondary.NotificationRepository = (*mockNotificationRepository)(nil)
	_ secondary.UserRepository         = (*mockUserRepository)(nil)
	_ secondary.SessionStore           = (*mockSessionStore)(nil)
)
