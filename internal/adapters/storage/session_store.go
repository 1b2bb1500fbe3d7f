package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

// SessionStore implements secondary.SessionStore over the collection
// store. The session key holds a single password-stripped user, not a
// collection.
type SessionStore struct {
	store secondary.CollectionStore
}

// NewSessionStore creates a new session store.
func NewSessionStore(store secondary.CollectionStore) *SessionStore {
	return &SessionStore{store: store}
}

// CurrentUser returns the persisted session user, or (nil, nil) when
// nobody is logged in. Corrupt session data reads as logged out.
func (s *SessionStore) CurrentUser(ctx context.Context) (*models.User, error) {
	raw, err := s.store.Load(ctx, secondary.KeyCurrentUser)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

// SetCurrentUser persists the session user.
func (s *SessionStore) SetCurrentUser(ctx context.Context, user models.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.store.Save(ctx, secondary.KeyCurrentUser, raw); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// ClearCurrentUser removes the persisted session user.
func (s *SessionStore) ClearCurrentUser(ctx context.Context) error {
	if err := s.store.Delete(ctx, secondary.KeyCurrentUser); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

// Ensure SessionStore implements the interface
var _ secondary.SessionStore = (*SessionStore)(nil)
