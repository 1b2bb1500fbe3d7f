package app

import (
	"context"
	"fmt"
	"time"

	"github.com/example/fleetdeck/internal/derive"
	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/primary"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

// JobServiceImpl implements the JobService interface. Job mutations drive
// the notification rules: every create emits one job_created entry and
// every status-changing update emits exactly one job_completed or
// job_updated entry, addressed to everyone.
type JobServiceImpl struct {
	jobRepo          secondary.JobRepository
	notificationRepo secondary.NotificationRepository

	now func() time.Time
}

// NewJobService creates a new JobService with injected dependencies.
func NewJobService(jobRepo secondary.JobRepository, notificationRepo secondary.NotificationRepository) *JobServiceImpl {
	return &JobServiceImpl{
		jobRepo:          jobRepo,
		notificationRepo: notificationRepo,
		now:              time.Now,
	}
}

// ListJobs returns every job.
func (s *JobServiceImpl) ListJobs(ctx context.Context) ([]models.Job, error) {
	return s.jobRepo.List(ctx)
}

// GetJob returns one job, or (nil, nil) when absent.
func (s *JobServiceImpl) GetJob(ctx context.Context, id string) (*models.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

// ListJobsByShip returns the jobs raised against one ship.
func (s *JobServiceImpl) ListJobsByShip(ctx context.Context, shipID string) ([]models.Job, error) {
	return s.jobRepo.ListByShip(ctx, shipID)
}

// ListJobsByComponent returns the jobs raised against one component.
func (s *JobServiceImpl) ListJobsByComponent(ctx context.Context, componentID string) ([]models.Job, error) {
	return s.jobRepo.ListByComponent(ctx, componentID)
}

// CreateJob creates a job with a generated id, stamps CreatedDate and
// emits a job_created broadcast notification.
func (s *JobServiceImpl) CreateJob(ctx context.Context, req primary.CreateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.Add(ctx, models.Job{
		ComponentID:        req.ComponentID,
		ShipID:             req.ShipID,
		Type:               req.Type,
		Priority:           req.Priority,
		Status:             req.Status,
		AssignedEngineerID: req.AssignedEngineerID,
		ScheduledDate:      req.ScheduledDate,
		Description:        req.Description,
		EstimatedHours:     req.EstimatedHours,
		CreatedDate:        s.now().Format(derive.DateLayout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if err := s.notify(ctx, models.NotificationJobCreated, "New Job Created",
		fmt.Sprintf("Job %q has been created for %s", job.Description, job.Type)); err != nil {
		return nil, err
	}

	return job, nil
}

// UpdateJob shallow-merges the request into the job. A status change
// emits exactly one notification: job_completed when the new status is
// Completed, job_updated otherwise. Updates that leave the status alone
// emit nothing. An unknown id is a silent no-op returning (nil, nil).
func (s *JobServiceImpl) UpdateJob(ctx context.Context, id string, req primary.UpdateJobRequest) (*models.Job, error) {
	existing, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	job, err := s.jobRepo.Update(ctx, id, secondary.JobPatch{
		ComponentID:        req.ComponentID,
		ShipID:             req.ShipID,
		Type:               req.Type,
		Priority:           req.Priority,
		Status:             req.Status,
		AssignedEngineerID: req.AssignedEngineerID,
		ScheduledDate:      req.ScheduledDate,
		CompletedDate:      req.CompletedDate,
		Description:        req.Description,
		EstimatedHours:     req.EstimatedHours,
		ActualHours:        req.ActualHours,
	})
	if err != nil || job == nil {
		return job, err
	}

	if existing != nil && req.Status != nil && *req.Status != existing.Status {
		if *req.Status == models.JobStatusCompleted {
			err = s.notify(ctx, models.NotificationJobCompleted, "Job Completed",
				fmt.Sprintf("Job %q has been completed", existing.Description))
		} else {
			err = s.notify(ctx, models.NotificationJobUpdated, "Job Updated",
				fmt.Sprintf("Job %q status changed to %s", existing.Description, *req.Status))
		}
		if err != nil {
			return nil, err
		}
	}

	return job, nil
}

// DeleteJob removes the job. Unknown ids are a no-op; deletes emit no
// notification.
func (s *JobServiceImpl) DeleteJob(ctx context.Context, id string) error {
	return s.jobRepo.Delete(ctx, id)
}

func (s *JobServiceImpl) notify(ctx context.Context, kind, title, message string) error {
	_, err := s.notificationRepo.Prepend(ctx, models.Notification{
		Type:      kind,
		Title:     title,
		Message:   message,
		Timestamp: s.now().Format(time.RFC3339),
		Read:      false,
		UserID:    models.AudienceBroadcast,
	})
	if err != nil {
		return fmt.Errorf("failed to record notification: %w", err)
	}
	return nil
}

// Ensure JobServiceImpl implements the interface.
var _ primary.JobService = (*JobServiceImpl)(nil)
