package storage

import (
	"context"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

// JobRepository implements secondary.JobRepository over the collection
// store.
type JobRepository struct {
	store secondary.CollectionStore
}

// NewJobRepository creates a new job repository.
func NewJobRepository(store secondary.CollectionStore) *JobRepository {
	return &JobRepository{store: store}
}

// List returns every job in collection order.
func (r *JobRepository) List(ctx context.Context) ([]models.Job, error) {
	return loadCollection[models.Job](ctx, r.store, secondary.KeyJobs)
}

// GetByID returns the job with the given id, or (nil, nil) when absent.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*models.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID == id {
			return &jobs[i], nil
		}
	}
	return nil, nil
}

// ListByShip returns the jobs raised against the given ship.
func (r *JobRepository) ListByShip(ctx context.Context, shipID string) ([]models.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Job
	for _, j := range jobs {
		if j.ShipID == shipID {
			out = append(out, j)
		}
	}
	return out, nil
}

// ListByComponent returns the jobs raised against the given component.
func (r *JobRepository) ListByComponent(ctx context.Context, componentID string) ([]models.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Job
	for _, j := range jobs {
		if j.ComponentID == componentID {
			out = append(out, j)
		}
	}
	return out, nil
}

// Add assigns a fresh id and appends the job. The ship/component pair is
// taken as given; the repository does not re-validate it.
func (r *JobRepository) Add(ctx context.Context, job models.Job) (*models.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	job.ID = newID("j")
	jobs = append(jobs, job)
	if err := saveCollection(ctx, r.store, secondary.KeyJobs, jobs); err != nil {
		return nil, err
	}
	return &job, nil
}

// Update shallow-merges the patch into the job with the given id.
// An unknown id is a silent no-op returning (nil, nil).
func (r *JobRepository) Update(ctx context.Context, id string, patch secondary.JobPatch) (*models.Job, error) {
	jobs, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].ID != id {
			continue
		}
		j := &jobs[i]
		j.ComponentID = strOr(patch.ComponentID, j.ComponentID)
		j.ShipID = strOr(patch.ShipID, j.ShipID)
		j.Type = strOr(patch.Type, j.Type)
		j.Priority = strOr(patch.Priority, j.Priority)
		j.Status = strOr(patch.Status, j.Status)
		j.AssignedEngineerID = strOr(patch.AssignedEngineerID, j.AssignedEngineerID)
		j.ScheduledDate = strOr(patch.ScheduledDate, j.ScheduledDate)
		j.CompletedDate = strOr(patch.CompletedDate, j.CompletedDate)
		j.Description = strOr(patch.Description, j.Description)
		j.EstimatedHours = floatOr(patch.EstimatedHours, j.EstimatedHours)
		j.ActualHours = floatOr(patch.ActualHours, j.ActualHours)
		if err := saveCollection(ctx, r.store, secondary.KeyJobs, jobs); err != nil {
			return nil, err
		}
		merged := *j
		return &merged, nil
	}
	return nil, nil
}

// Delete removes the job with the given id. Unknown ids are a no-op.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	jobs, err := r.List(ctx)
	if err != nil {
		return err
	}
	kept := jobs[:0]
	for _, j := range jobs {
		if j.ID != id {
			kept = append(kept, j)
		}
	}
	if len(kept) == len(jobs) {
		return nil
	}
	return saveCollection(ctx, r.store, secondary.KeyJobs, kept)
}

// Ensure JobRepository implements the interface
var _ secondary.JobRepository = (*JobRepository)(nil)
