// Package auth holds the role-based permission model: a static mapping
// from role to capability set with no state and no side effects.
package auth

import "github.com/example/fleetdeck/internal/models"

// Permission names one capability a role may hold.
type Permission string

// Capability vocabulary.
const (
	CanCreateShips      Permission = "canCreateShips"
	CanEditShips        Permission = "canEditShips"
	CanDeleteShips      Permission = "canDeleteShips"
	CanCreateComponents Permission = "canCreateComponents"
	CanEditComponents   Permission = "canEditComponents"
	CanDeleteComponents Permission = "canDeleteComponents"
	CanCreateJobs       Permission = "canCreateJobs"
	CanEditJobs         Permission = "canEditJobs"
	CanDeleteJobs       Permission = "canDeleteJobs"
	CanAssignJobs       Permission = "canAssignJobs"
	CanViewAllData      Permission = "canViewAllData"
	CanManageUsers      Permission = "canManageUsers"
)

// rolePermissions is the full capability table. Admin holds everything;
// Inspector can create and edit but not delete; Engineer only works jobs.
var rolePermissions = map[models.Role]map[Permission]bool{
	models.RoleAdmin: {
		CanCreateShips: true, CanEditShips: true, CanDeleteShips: true,
		CanCreateComponents: true, CanEditComponents: true, CanDeleteComponents: true,
		CanCreateJobs: true, CanEditJobs: true, CanDeleteJobs: true,
		CanAssignJobs: true, CanViewAllData: true, CanManageUsers: true,
	},
	models.RoleInspector: {
		CanCreateShips: false, CanEditShips: true, CanDeleteShips: false,
		CanCreateComponents: true, CanEditComponents: true, CanDeleteComponents: false,
		CanCreateJobs: true, CanEditJobs: true, CanDeleteJobs: false,
		CanAssignJobs: true, CanViewAllData: true, CanManageUsers: false,
	},
	models.RoleEngineer: {
		CanCreateShips: false, CanEditShips: false, CanDeleteShips: false,
		CanCreateComponents: false, CanEditComponents: false, CanDeleteComponents: false,
		CanCreateJobs: false, CanEditJobs: true, CanDeleteJobs: false,
		CanAssignJobs: false, CanViewAllData: true, CanManageUsers: false,
	},
}

// actionPermissions maps the command-surface action vocabulary onto
// capabilities.
var actionPermissions = map[string]Permission{
	"create_ship":      CanCreateShips,
	"edit_ship":        CanEditShips,
	"delete_ship":      CanDeleteShips,
	"create_component": CanCreateComponents,
	"edit_component":   CanEditComponents,
	"delete_component": CanDeleteComponents,
	"create_job":       CanCreateJobs,
	"edit_job":         CanEditJobs,
	"delete_job":       CanDeleteJobs,
	"assign_job":       CanAssignJobs,
}

// HasPermission reports whether the role holds the capability. Unknown
// roles or capabilities are false, never a panic.
func HasPermission(role models.Role, p Permission) bool {
	return rolePermissions[role][p]
}

// CanPerform reports whether the role may perform the named action.
// Unknown roles or actions are false.
func CanPerform(role models.Role, action string) bool {
	p, ok := actionPermissions[action]
	if !ok {
		return false
	}
	return HasPermission(role, p)
}
