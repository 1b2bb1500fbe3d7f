// Package models contains the domain entities for the fleet maintenance ledger.
package models

// Role classifies what a user is allowed to do. See the auth package for the
// capability table.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleInspector Role = "Inspector"
	RoleEngineer  Role = "Engineer"
)

// User is a password-stripped user, safe to hold in session state and to
// return from login.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}

// Credential is a user record as stored in the seeded credential list.
// The password never leaves the auth service.
type Credential struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
	Name     string `json:"name"`
}

// User returns the password-stripped view of the credential.
func (c Credential) User() User {
	return User{ID: c.ID, Email: c.Email, Role: c.Role, Name: c.Name}
}
