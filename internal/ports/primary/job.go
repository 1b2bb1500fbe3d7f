package primary

import (
	"context"

	"github.com/example/fleetdeck/internal/models"
)

// JobService defines the primary port for maintenance job operations.
// Job mutations drive the notification rule engine as a side effect:
// creating a job emits job_created; a status-changing update emits
// job_completed (new status Completed) or job_updated (any other status);
// updates that leave status untouched emit nothing.
type JobService interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	ListJobsByShip(ctx context.Context, shipID string) ([]models.Job, error)
	ListJobsByComponent(ctx context.Context, componentID string) ([]models.Job, error)
	CreateJob(ctx context.Context, req CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, id string, req UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id string) error
}

// CreateJobRequest contains the fields for a new job. CreatedDate is
// stamped by the service.
type CreateJobRequest struct {
	ComponentID        string
	ShipID             string
	Type               string
	Priority           string
	Status             string
	AssignedEngineerID string
	ScheduledDate      string
	Description        string
	EstimatedHours     float64
}

// UpdateJobRequest is a partial job update; nil fields are untouched.
// Setting CompletedDate alongside a Completed status is the caller's
// responsibility - the service does not couple the two.
type UpdateJobRequest struct {
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
