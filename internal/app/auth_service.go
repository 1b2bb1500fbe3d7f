// Package app contains the application services implementing the primary
// ports, with repositories injected through the secondary ports.
package app

import (
	"context"
	"fmt"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/primary"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	userRepo secondary.UserRepository
	session  secondary.SessionStore

	// In-memory session state, rehydrated from the store on first use.
	current  *models.User
	hydrated bool
}

// NewAuthService creates a new AuthService with injected dependencies.
func NewAuthService(userRepo secondary.UserRepository, session secondary.SessionStore) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo: userRepo,
		session:  session,
	}
}

// Login validates the credentials by exact equality of both email and
// password. On success the password-stripped user becomes the session
// user, in memory and in the store. A non-match changes nothing and the
// failure does not distinguish unknown email from wrong password.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*models.User, bool, error) {
	creds, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load users: %w", err)
	}

	for _, c := range creds {
		if c.Email != email || c.Password != password {
			continue
		}
		user := c.User()
		if err := s.session.SetCurrentUser(ctx, user); err != nil {
			return nil, false, fmt.Errorf("failed to persist session: %w", err)
		}
		s.current = &user
		s.hydrated = true
		return &user, true, nil
	}

	return nil, false, nil
}

// Logout clears the session user in memory and in the store.
func (s *AuthServiceImpl) Logout(ctx context.Context) error {
	if err := s.session.ClearCurrentUser(ctx); err != nil {
		return err
	}
	s.current = nil
	s.hydrated = true
	return nil
}

// CurrentUser returns the authenticated user, rehydrating from the store
// on first call. (nil, nil) means Anonymous.
func (s *AuthServiceImpl) CurrentUser(ctx context.Context) (*models.User, error) {
	if s.hydrated {
		return s.current, nil
	}
	user, err := s.session.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	s.current = user
	s.hydrated = true
	return user, nil
}

// Ensure AuthServiceImpl implements the interface.
var _ primary.AuthService = (*AuthServiceImpl)(nil)
