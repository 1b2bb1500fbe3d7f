// Package primary defines the primary ports (driving adapters) for the
// application: the service interfaces the CLI talks to, and their
// request/response types.
package primary

import (
	"context"

	"github.com/example/fleetdeck/internal/models"
)

// AuthService defines the primary port for session management.
//
// The session state machine has two states: Anonymous and
// Authenticated(user). Login success moves to Authenticated, Logout back
// to Anonymous, and a failed login leaves the state untouched.
type AuthService interface {
	// Login validates email+password against the credential list by exact,
	// case-sensitive equality. On success the password-stripped user is
	// persisted as the session user and returned with ok=true. On a
	// non-match it returns (nil, false, nil) with no state change; the
	// caller gets no hint whether the email or the password was wrong.
	Login(ctx context.Context, email, password string) (user *models.User, ok bool, err error)

	// Logout clears the session user in memory and in the store.
	Logout(ctx context.Context) error

	// CurrentUser returns the authenticated user, rehydrating from the
	// store on first call. (nil, nil) means nobody is logged in.
	CurrentUser(ctx context.Context) (*models.User, error)
}
