package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

// SeedUsers is the fixed credential list. Users are not created or edited
// at runtime; this seed is the entire account surface.
var SeedUsers = []models.Credential{
	{ID: "1", Role: models.RoleAdmin, Email: "admin@entnt.in", Password: "admin123", Name: "John Admin"},
	{ID: "2", Role: models.RoleInspector, Email: "inspector@entnt.in", Password: "inspect123", Name: "Jane Inspector"},
	{ID: "3", Role: models.RoleEngineer, Email: "engineer@entnt.in", Password: "engine123", Name: "Bob Engineer"},
}

// SeedShips is the starter fleet.
var SeedShips = []models.Ship{
	{ID: "s1", Name: "Ever Given", IMO: "9811000", Flag: "Panama", Status: models.ShipStatusActive, RegistrationDate: "2020-01-01", Description: "Large container vessel"},
	{ID: "s2", Name: "Maersk Alabama", IMO: "9164263", Flag: "USA", Status: models.ShipStatusUnderMaintenance, RegistrationDate: "2019-06-15", Description: "Cargo container ship"},
	{ID: "s3", Name: "MSC Oscar", IMO: "9703291", Flag: "Panama", Status: models.ShipStatusActive, RegistrationDate: "2021-03-20", Description: "Ultra large container vessel"},
}

// SeedComponents is the starter equipment set.
var SeedComponents = []models.Component{
	{ID: "c1", ShipID: "s1", Name: "Main Engine", SerialNumber: "ME-1234", InstallDate: "2020-01-10", LastMaintenanceDate: "2024-03-12", NextMaintenanceDate: "2024-09-12", Status: models.ComponentStatusActive, Description: "Primary propulsion engine"},
	{ID: "c2", ShipID: "s2", Name: "Radar", SerialNumber: "RAD-5678", InstallDate: "2021-07-18", LastMaintenanceDate: "2023-12-01", NextMaintenanceDate: "2024-06-01", Status: models.ComponentStatusMaintenanceRequired, Description: "Navigation radar system"},
	{ID: "c3", ShipID: "s1", Name: "Generator", SerialNumber: "GEN-9012", InstallDate: "2020-02-05", LastMaintenanceDate: "2024-04-20", NextMaintenanceDate: "2024-10-20", Status: models.ComponentStatusActive, Description: "Auxiliary power generator"},
	{ID: "c4", ShipID: "s3", Name: "Crane", SerialNumber: "CR-3456", InstallDate: "2021-03-25", LastMaintenanceDate: "2024-01-15", NextMaintenanceDate: "2024-07-15", Status: models.ComponentStatusActive, Description: "Container loading crane"},
}

// SeedJobs is the starter job ledger.
var SeedJobs = []models.Job{
	{ID: "j1", ComponentID: "c1", ShipID: "s1", Type: models.JobTypeInspection, Priority: models.JobPriorityHigh, Status: models.JobStatusOpen, AssignedEngineerID: "3", ScheduledDate: "2024-06-15", Description: "Routine engine inspection", EstimatedHours: 8, CreatedDate: "2024-05-29"},
	{ID: "j2", ComponentID: "c2", ShipID: "s2", Type: models.JobTypeRepair, Priority: models.JobPriorityCritical, Status: models.JobStatusInProgress, AssignedEngineerID: "3", ScheduledDate: "2024-06-01", Description: "Radar calibration and repair", EstimatedHours: 12, CreatedDate: "2024-05-25"},
	{ID: "j3", ComponentID: "c3", ShipID: "s1", Type: models.JobTypeRoutineMaintenance, Priority: models.JobPriorityMedium, Status: models.JobStatusCompleted, AssignedEngineerID: "3", ScheduledDate: "2024-05-20", CompletedDate: "2024-05-20", Description: "Generator maintenance and oil change", EstimatedHours: 6, ActualHours: 5, CreatedDate: "2024-05-15"},
}

// SeedFixtures populates any absent collection key with the built-in
// starter dataset. It never overwrites an existing key, so re-running is
// safe at every startup.
func SeedFixtures(ctx context.Context, store secondary.CollectionStore) error {
	seeds := []struct {
		key  string
		data any
	}{
		{secondary.KeyUsers, SeedUsers},
		{secondary.KeyShips, SeedShips},
		{secondary.KeyComponents, SeedComponents},
		{secondary.KeyJobs, SeedJobs},
		{secondary.KeyNotifications, []models.Notification{}},
	}

	for _, s := range seeds {
		existing, err := store.Load(ctx, s.key)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.key, err)
		}
		if existing != nil {
			continue
		}
		raw, err := json.Marshal(s.data)
		if err != nil {
			return fmt.Errorf("seed %s: %w", s.key, err)
		}
		if err := store.Save(ctx, s.key, raw); err != nil {
			return fmt.Errorf("seed %s: %w", s.key, err)
		}
	}

	return nil
}
