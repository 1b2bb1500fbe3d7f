package app

import (
	"context"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/primary"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

// NotificationServiceImpl implements the NotificationService interface.
type NotificationServiceImpl struct {
	notificationRepo secondary.NotificationRepository
}

// NewNotificationService creates a new NotificationService with injected
// dependencies.
func NewNotificationService(notificationRepo secondary.NotificationRepository) *NotificationServiceImpl {
	return &NotificationServiceImpl{notificationRepo: notificationRepo}
}

// List returns the feed most-recent-first.
func (s *NotificationServiceImpl) List(ctx context.Context) ([]models.Notification, error) {
	return s.notificationRepo.List(ctx)
}

// MarkRead flags one notification as read. Unknown ids are a no-op.
func (s *NotificationServiceImpl) MarkRead(ctx context.Context, id string) error {
	return s.notificationRepo.MarkRead(ctx, id)
}

// UnreadCount returns the number of unread notifications.
func (s *NotificationServiceImpl) UnreadCount(ctx context.Context) (int, error) {
	feed, err := s.notificationRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, entry := range feed {
		if !entry.Read {
			n++
		}
	}
	return n, nil
}

// Ensure NotificationServiceImpl implements the interface.
var _ primary.NotificationService = (*NotificationServiceImpl)(nil)
