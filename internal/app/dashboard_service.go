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

// DashboardServiceImpl implements the DashboardService interface. All
// views are computed fresh from the current collections on every call;
// nothing derived is ever persisted.
type DashboardServiceImpl struct {
	shipRepo      secondary.ShipRepository
	componentRepo secondary.ComponentRepository
	jobRepo       secondary.JobRepository
}

// NewDashboardService creates a new DashboardService with injected
// dependencies.
func NewDashboardService(shipRepo secondary.ShipRepository, componentRepo secondary.ComponentRepository, jobRepo secondary.JobRepository) *DashboardServiceImpl {
	return &DashboardServiceImpl{
		shipRepo:      shipRepo,
		componentRepo: componentRepo,
		jobRepo:       jobRepo,
	}
}

// KPIs aggregates the dashboard numbers at now.
func (s *DashboardServiceImpl) KPIs(ctx context.Context, now time.Time) (*primary.KPISnapshot, error) {
	ships, err := s.shipRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ships: %w", err)
	}
	components, err := s.componentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list components: %w", err)
	}
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}

	active := 0
	for _, ship := range ships {
		if ship.Status == models.ShipStatusActive {
			active++
		}
	}
	completed := 0
	for _, j := range jobs {
		if j.Status == models.JobStatusCompleted {
			completed++
		}
	}

	return &primary.KPISnapshot{
		TotalShips:        len(ships),
		ActiveShips:       active,
		TotalComponents:   len(components),
		OverdueComponents: len(derive.OverdueComponents(components, now)),
		TotalJobs:         len(jobs),
		CompletedJobs:     completed,
		ActiveJobs:        derive.ActiveJobs(jobs),

		CriticalJobs: derive.OpenByPriority(jobs, models.JobPriorityCritical),
		HighJobs:     derive.OpenByPriority(jobs, models.JobPriorityHigh),
		MediumJobs:   derive.OpenByPriority(jobs, models.JobPriorityMedium),
		LowJobs:      derive.OpenByPriority(jobs, models.JobPriorityLow),

		FleetEfficiency:       derive.FleetEfficiency(ships),
		MaintenanceCompliance: derive.MaintenanceCompliance(components, now),
		CompletionRate:        derive.CompletionRate(jobs),
	}, nil
}

// OverdueComponents returns the components overdue at now.
func (s *DashboardServiceImpl) OverdueComponents(ctx context.Context, now time.Time) ([]models.Component, error) {
	components, err := s.componentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return derive.OverdueComponents(components, now), nil
}

// UpcomingHighPriority returns the top-five shortlist of pending
// High/Critical work at or after now.
func (s *DashboardServiceImpl) UpcomingHighPriority(ctx context.Context, now time.Time) ([]primary.JobView, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, derive.UpcomingHighPriority(jobs, now))
}

// RecentJobs returns up to limit jobs with names resolved, in collection
// order.
func (s *DashboardServiceImpl) RecentJobs(ctx context.Context, limit int) ([]primary.JobView, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(jobs) > limit {
		jobs = jobs[:limit]
	}
	return s.resolve(ctx, jobs)
}

// JobsOnDay returns the jobs scheduled on the same calendar day as day.
func (s *DashboardServiceImpl) JobsOnDay(ctx context.Context, day time.Time) ([]primary.JobView, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, derive.JobsOnDay(jobs, day))
}

// Month summarizes one calendar month of scheduled work.
func (s *DashboardServiceImpl) Month(ctx context.Context, year int, month time.Month) (*primary.MonthSummary, error) {
	jobs, err := s.jobRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	inMonth := derive.JobsInMonth(jobs, year, month)
	summary := &primary.MonthSummary{
		Year:         year,
		Month:        month,
		DaysWithJobs: derive.DaysWithJobs(jobs, year, month),
		TotalJobs:    len(inMonth),
	}
	for _, j := range inMonth {
		switch j.Status {
		case models.JobStatusOpen:
			summary.OpenJobs++
		case models.JobStatusInProgress:
			summary.InProgress++
		case models.JobStatusCompleted:
			summary.CompletedJobs++
		}
	}
	return summary, nil
}

// resolve attaches ship and component names to jobs. A dangling
// reference leaves the name empty; it is not an error.
func (s *DashboardServiceImpl) resolve(ctx context.Context, jobs []models.Job) ([]primary.JobView, error) {
	ships, err := s.shipRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	components, err := s.componentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	shipNames := make(map[string]string, len(ships))
	for _, ship := range ships {
		shipNames[ship.ID] = ship.Name
	}
	componentNames := make(map[string]string, len(components))
	for _, c := range components {
		componentNames[c.ID] = c.Name
	}

	views := make([]primary.JobView, len(jobs))
	for i, j := range jobs {
		views[i] = primary.JobView{
			Job:           j,
			ShipName:      shipNames[j.ShipID],
			ComponentName: componentNames[j.ComponentID],
		}
	}
	return views, nil
}

// Ensure DashboardServiceImpl implements the interface.
var _ primary.DashboardService = (*DashboardServiceImpl)(nil)
