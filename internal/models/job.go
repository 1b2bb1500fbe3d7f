package models

// Job types
const (
	JobTypeInspection         = "Inspection"
	JobTypeRepair             = "Repair"
	JobTypeReplacement        = "Replacement"
	JobTypeRoutineMaintenance = "Routine Maintenance"
)

// Job priorities
const (
	JobPriorityLow      = "Low"
	JobPriorityMedium   = "Medium"
	JobPriorityHigh     = "High"
	JobPriorityCritical = "Critical"
)

// Job statuses
const (
	JobStatusOpen       = "Open"
	JobStatusInProgress = "In Progress"
	JobStatusCompleted  = "Completed"
	JobStatusCancelled  = "Cancelled"
)

// Job is a maintenance job raised against a specific ship+component pair.
// CompletedDate is set if and only if status is Completed - a caller
// convention the repository does not enforce.
type Job struct {
	ID                 string  `json:"id"`
	ComponentID        string  `json:"componentId"`
	ShipID             string  `json:"shipId"`
	Type               string  `json:"type"`
	Priority           string  `json:"priority"`
	Status             string  `json:"status"`
	AssignedEngineerID string  `json:"assignedEngineerId"`
	ScheduledDate      string  `json:"scheduledDate"`
	CompletedDate      string  `json:"completedDate,omitempty"`
	Description        string  `json:"description"`
	EstimatedHours     float64 `json:"estimatedHours"`
	ActualHours        float64 `json:"actualHours,omitempty"`
	CreatedDate        string  `json:"createdDate"`
}

// IsActive reports whether the job still counts against the active-work
// backlog (Open or In Progress).
func (j Job) IsActive() bool {
	return j.Status == JobStatusOpen || j.Status == JobStatusInProgress
}
