package primary

import (
	"context"

	"github.com/example/fleetdeck/internal/models"
)

// NotificationService defines the primary port for the notification feed.
type NotificationService interface {
	// List returns the feed most-recent-first.
	List(ctx context.Context) ([]models.Notification, error)

	// MarkRead flags one notification as read. Unknown ids are a no-op.
	MarkRead(ctx context.Context, id string) error

	// UnreadCount returns the number of unread notifications.
	UnreadCount(ctx context.Context) (int, error)
}
