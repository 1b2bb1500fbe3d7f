package storage

import (
	"context"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

// NotificationRepository implements secondary.NotificationRepository over
// the collection store.
type NotificationRepository struct {
	store secondary.CollectionStore
}

// NewNotificationRepository creates a new notification repository.
func NewNotificationRepository(store secondary.CollectionStore) *NotificationRepository {
	return &NotificationRepository{store: store}
}

// List returns the feed, most recent first.
func (r *NotificationRepository) List(ctx context.Context) ([]models.Notification, error) {
	return loadCollection[models.Notification](ctx, r.store, secondary.KeyNotifications)
}

// Prepend assigns a fresh id and inserts the notification at the front of
// the feed.
func (r *NotificationRepository) Prepend(ctx context.Context, n models.Notification) (*models.Notification, error) {
	feed, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	n.ID = newID("n")
	feed = append([]models.Notification{n}, feed...)
	if err := saveCollection(ctx, r.store, secondary.KeyNotifications, feed); err != nil {
		return nil, err
	}
	return &n, nil
}

// MarkRead flags the notification with the given id as read. Unknown ids
// are a no-op.
func (r *NotificationRepository) MarkRead(ctx context.Context, id string) error {
	feed, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i := range feed {
		if feed[i].ID == id {
			if feed[i].Read {
				return nil
			}
			feed[i].Read = true
			return saveCollection(ctx, r.store, secondary.KeyNotifications, feed)
		}
	}
	return nil
}

// Ensure NotificationRepository implements the interface
var _ secondary.NotificationRepository = (*NotificationRepository)(nil)
