package models

// Notification types
const (
	NotificationJobCreated     = "job_created"
	NotificationJobUpdated     = "job_updated"
	NotificationJobCompleted   = "job_completed"
	NotificationMaintenanceDue = "maintenance_due"
)

// Audience is who a notification is addressed to: either a single user id
// or the broadcast audience. It serializes as the plain user id string,
// with "all" standing for broadcast, matching the stored feed layout.
type Audience string

// AudienceBroadcast addresses a notification to every user.
const AudienceBroadcast Audience = "all"

// AudienceUser addresses a notification to one specific user.
func AudienceUser(userID string) Audience { return Audience(userID) }

// IsBroadcast reports whether the audience is everyone.
func (a Audience) IsBroadcast() bool { return a == AudienceBroadcast }

// Notification is one entry in the feed. New entries are prepended, so the
// feed reads most-recent-first.
type Notification struct {
	ID        string   `json:"id"`
	Type      string   `json:"type"`
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Timestamp string   `json:"timestamp"`
	Read      bool     `json:"read"`
	UserID    Audience `json:"userId"`
}
