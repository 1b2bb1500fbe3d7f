// Package derive contains the pure derivation rules over entity
// snapshots: overdue detection, KPI arithmetic, calendar grouping and the
// upcoming-work shortlist. Nothing here reads or writes storage; callers
// pass in the current collections and a reference instant.
package derive

import (
	"math"
	"sort"
	"time"

	"github.com/example/fleetdeck/internal/models"
)

// DateLayout is the day-granular layout entity dates are stored in.
const DateLayout = "2006-01-02"

// ParseWhen parses a stored date, accepting the day layout and RFC3339
// timestamps. ok is false for anything else; callers treat unparseable
// dates as "no date".
func ParseWhen(s string) (time.Time, bool) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// IsOverdue reports whether the component's next maintenance date is
// strictly before now. A component due exactly at now is not overdue, and
// a component with no parseable next date is never overdue.
func IsOverdue(c models.Component, now time.Time) bool {
	next, ok := ParseWhen(c.NextMaintenanceDate)
	if !ok {
		return false
	}
	return now.After(next)
}

// OverdueComponents filters the components that are overdue at now.
func OverdueComponents(components []models.Component, now time.Time) []models.Component {
	var out []models.Component
	for _, c := range components {
		if IsOverdue(c, now) {
			out = append(out, c)
		}
	}
	return out
}

// percent is round(100*part/total); 0 when total is 0.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}

// FleetEfficiency is the percentage of ships with status Active, 0 for an
// empty fleet.
func FleetEfficiency(ships []models.Ship) int {
	active := 0
	for _, s := range ships {
		if s.Status == models.ShipStatusActive {
			active++
		}
	}
	return percent(active, len(ships))
}

// MaintenanceCompliance is the percentage of components not overdue at
// now. No components at all counts as fully compliant (100).
func MaintenanceCompliance(components []models.Component, now time.Time) int {
	if len(components) == 0 {
		return 100
	}
	overdue := len(OverdueComponents(components, now))
	return percent(len(components)-overdue, len(components))
}

// CompletionRate is the percentage of jobs with status Completed, 0 when
// there are no jobs.
func CompletionRate(jobs []models.Job) int {
	completed := 0
	for _, j := range jobs {
		if j.Status == models.JobStatusCompleted {
			completed++
		}
	}
	return percent(completed, len(jobs))
}

// ActiveJobs counts jobs that are Open or In Progress.
func ActiveJobs(jobs []models.Job) int {
	n := 0
	for _, j := range jobs {
		if j.IsActive() {
			n++
		}
	}
	return n
}

// OpenByPriority counts not-yet-completed jobs with the given priority.
func OpenByPriority(jobs []models.Job, priority string) int {
	n := 0
	for _, j := range jobs {
		if j.Priority == priority && j.Status != models.JobStatusCompleted {
			n++
		}
	}
	return n
}

// SameDay reports calendar-day equality (same year, month and day).
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// JobsOnDay returns the jobs scheduled on the same calendar day as day.
func JobsOnDay(jobs []models.Job, day time.Time) []models.Job {
	var out []models.Job
	for _, j := range jobs {
		when, ok := ParseWhen(j.ScheduledDate)
		if ok && SameDay(when, day) {
			out = append(out, j)
		}
	}
	return out
}

// JobsInMonth returns the jobs scheduled within the given month.
func JobsInMonth(jobs []models.Job, year int, month time.Month) []models.Job {
	var out []models.Job
	for _, j := range jobs {
		when, ok := ParseWhen(j.ScheduledDate)
		if ok && when.Year() == year && when.Month() == month {
			out = append(out, j)
		}
	}
	return out
}

// DaysWithJobs returns the days of the month (1-based, ascending) that
// carry at least one scheduled job.
func DaysWithJobs(jobs []models.Job, year int, month time.Month) []int {
	seen := map[int]bool{}
	for _, j := range JobsInMonth(jobs, year, month) {
		when, _ := ParseWhen(j.ScheduledDate)
		seen[when.Day()] = true
	}
	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

// UpcomingHighPriority returns High/Critical jobs scheduled at or after
// now and not Completed, soonest first, capped at five.
func UpcomingHighPriority(jobs []models.Job, now time.Time) []models.Job {
	type dated struct {
		job  models.Job
		when time.Time
	}
	var picked []dated
	for _, j := range jobs {
		if j.Priority != models.JobPriorityHigh && j.Priority != models.JobPriorityCritical {
			continue
		}
		if j.Status == models.JobStatusCompleted {
			continue
		}
		when, ok := ParseWhen(j.ScheduledDate)
		if !ok || when.Before(now) {
			continue
		}
		picked = append(picked, dated{job: j, when: when})
	}
	sort.SliceStable(picked, func(i, k int) bool { return picked[i].when.Before(picked[k].when) })
	if len(picked) > 5 {
		picked = picked[:5]
	}
	out := make([]models.Job, len(picked))
	for i, d := range picked {
		out[i] = d.job
	}
	return out
}
