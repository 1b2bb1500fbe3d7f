package primary

import (
	"context"
	"time"

	"github.com/example/fleetdeck/internal/models"
)

// DashboardService defines the primary port for derived, read-only views
// over the current snapshots of ships, components and jobs. Nothing here
// mutates state; every call re-reads the collections.
type DashboardService interface {
	// KPIs aggregates the dashboard numbers for the given instant.
	KPIs(ctx context.Context, now time.Time) (*KPISnapshot, error)

	// OverdueComponents returns components whose next maintenance date is
	// strictly before now.
	OverdueComponents(ctx context.Context, now time.Time) ([]models.Component, error)

	// UpcomingHighPriority returns High/Critical jobs scheduled at or after
	// now and not yet completed, soonest first, capped at five.
	UpcomingHighPriority(ctx context.Context, now time.Time) ([]JobView, error)

	// RecentJobs returns up to limit jobs with their ship/component names
	// resolved, in collection order.
	RecentJobs(ctx context.Context, limit int) ([]JobView, error)

	// JobsOnDay returns jobs whose scheduled date falls on the same
	// calendar day as day.
	JobsOnDay(ctx context.Context, day time.Time) ([]JobView, error)

	// Month summarizes one calendar month: which days carry scheduled jobs
	// and how the month's jobs break down by status.
	Month(ctx context.Context, year int, month time.Month) (*MonthSummary, error)
}

// KPISnapshot is the aggregated dashboard state at one instant.
// Percentages are rounded to whole numbers. Zero denominators resolve to
// 0, except compliance which is 100 when there are no components.
type KPISnapshot struct {
	TotalShips        int
	ActiveShips       int
	TotalComponents   int
	OverdueComponents int
	TotalJobs         int
	CompletedJobs     int
	ActiveJobs        int

	// Open (not Completed) jobs by priority.
	CriticalJobs int
	HighJobs     int
	MediumJobs   int
	LowJobs      int

	FleetEfficiency       int
	MaintenanceCompliance int
	CompletionRate        int
}

// JobView is a job with its related names resolved for display. ShipName
// and ComponentName are empty when the referenced record no longer exists;
// a dangling reference is not an error.
type JobView struct {
	Job           models.Job
	ShipName      string
	ComponentName string
}

// MonthSummary is the calendar view of one month.
type MonthSummary struct {
	Year  int
	Month time.Month

	// DaysWithJobs lists the days of the month (1-based) that have at
	// least one scheduled job, ascending.
	DaysWithJobs []int

	// Status counts over the month's scheduled jobs.
	TotalJobs     int
	OpenJobs      int
	InProgress    int
	CompletedJobs int
}
