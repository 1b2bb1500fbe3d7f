package storage_test

import (
	"context"
	"strings"
	"testing"

	"github.com/example/fleetdeck/internal/adapters/storage"
	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

func floatPtr(f float64) *float64 { return &f }

func seedJobs(t *testing.T, repo *storage.JobRepository) []models.Job {
	t.Helper()
	ctx := context.Background()

	var out []models.Job
	for _, j := range []models.Job{
		{ShipID: "s1", ComponentID: "c1", Type: models.JobTypeInspection, Priority: models.JobPriorityHigh, Status: models.JobStatusOpen, Description: "Engine inspection"},
		{ShipID: "s2", ComponentID: "c2", Type: models.JobTypeRepair, Priority: models.JobPriorityCritical, Status: models.JobStatusInProgress, Description: "Radar repair"},
		{ShipID: "s1", ComponentID: "c3", Type: models.JobTypeRoutineMaintenance, Priority: models.JobPriorityMedium, Status: models.JobStatusCompleted, Description: "Generator maintenance"},
	} {
		added, err := repo.Add(ctx, j)
		if err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		out = append(out, *added)
	}
	return out
}

func TestJobRepository_Add(t *testing.T) {
	repo := storage.NewJobRepository(newMemStore())

	job, err := repo.Add(context.Background(), models.Job{Description: "Engine inspection", EstimatedHours: 8})
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !strings.HasPrefix(job.ID, "j-") {
		t.Errorf("expected j- prefixed id, got %q", job.ID)
	}
	if job.EstimatedHours != 8 {
		t.Errorf("expected estimated hours kept, got %g", job.EstimatedHours)
	}
}

func TestJobRepository_ListByShip(t *testing.T) {
	repo := storage.NewJobRepository(newMemStore())
	seedJobs(t, repo)

	jobs, err := repo.ListByShip(context.Background(), "s1")
	if err != nil {
		t.Fatalf("ListByShip failed: %v", err)
	}
	if len(jobs) != 2 {
		t.Errorf("expected 2 jobs for s1, got %d", len(jobs))
	}
}

func TestJobRepository_ListByComponent(t *testing.T) {
	repo := storage.NewJobRepository(newMemStore())
	seedJobs(t, repo)

	jobs, err := repo.ListByComponent(context.Background(), "c2")
	if err != nil {
		t.Fatalf("ListByComponent failed: %v", err)
	}
	if len(jobs) != 1 || jobs[0].Description != "Radar repair" {
		t.Errorf("expected only the radar job, got %+v", jobs)
	}
}

func TestJobRepository_Update_MergesNumbers(t *testing.T) {
	repo := storage.NewJobRepository(newMemStore())
	jobs := seedJobs(t, repo)
	ctx := context.Background()

	updated, err := repo.Update(ctx, jobs[0].ID, secondary.JobPatch{
		Status:      strPtr(models.JobStatusCompleted),
		ActualHours: floatPtr(6.5),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Status != models.JobStatusCompleted || updated.ActualHours != 6.5 {
		t.Errorf("expected patch applied, got %+v", updated)
	}
	if updated.Description != "Engine inspection" || updated.Priority != models.JobPriorityHigh {
		t.Error("expected untouched fields preserved")
	}
}

func TestJobRepository_Update_ZeroValueIsExplicit(t *testing.T) {
	repo := storage.NewJobRepository(newMemStore())
	jobs := seedJobs(t, repo)

	// A pointer to zero clears the field; only nil means "keep".
	updated, err := repo.Update(context.Background(), jobs[0].ID, secondary.JobPatch{
		AssignedEngineerID: strPtr(""),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.AssignedEngineerID != "" {
		t.Errorf("expected engineer cleared, got %q", updated.AssignedEngineerID)
	}
}

func TestJobRepository_Delete_Idempotent(t *testing.T) {
	repo := storage.NewJobRepository(newMemStore())
	jobs := seedJobs(t, repo)
	ctx := context.Background()

	if err := repo.Delete(ctx, jobs[1].ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := repo.Delete(ctx, jobs[1].ID); err != nil {
		t.Fatalf("repeat Delete failed: %v", err)
	}

	left, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(left) != 2 {
		t.Errorf("expected 2 jobs left, got %d", len(left))
	}
}
