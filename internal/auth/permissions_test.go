package auth

import (
	"testing"

	"github.com/example/fleetdeck/internal/models"
)

func TestCanPerform(t *testing.T) {
	tests := []struct {
		role   models.Role
		action string
		want   bool
	}{
		{models.RoleAdmin, "create_ship", true},
		{models.RoleAdmin, "delete_ship", true},
		{models.RoleAdmin, "delete_job", true},

		{models.RoleInspector, "create_ship", false},
		{models.RoleInspector, "edit_ship", true},
		{models.RoleInspector, "create_component", true},
		{models.RoleInspector, "delete_component", false},
		{models.RoleInspector, "create_job", true},
		{models.RoleInspector, "delete_job", false},
		{models.RoleInspector, "assign_job", true},

		{models.RoleEngineer, "create_ship", false},
		{models.RoleEngineer, "edit_ship", false},
		{models.RoleEngineer, "create_component", false},
		{models.RoleEngineer, "create_job", false},
		{models.RoleEngineer, "edit_job", true},
		{models.RoleEngineer, "delete_job", false},
		{models.RoleEngineer, "assign_job", false},
	}

	for _, tt := range tests {
		if got := CanPerform(tt.role, tt.action); got != tt.want {
			t.Errorf("CanPerform(%s, %s) = %v, want %v", tt.role, tt.action, got, tt.want)
		}
	}
}

func TestCanPerform_Unknown(t *testing.T) {
	if CanPerform("Visitor", "edit_job") {
		t.Error("unknown role must not be granted anything")
	}
	if CanPerform(models.RoleAdmin, "launch_missiles") {
		t.Error("unknown action must be denied even for Admin")
	}
}

func TestHasPermission(t *testing.T) {
	if !HasPermission(models.RoleAdmin, CanManageUsers) {
		t.Error("Admin should manage users")
	}
	if HasPermission(models.RoleInspector, CanManageUsers) {
		t.Error("Inspector must not manage users")
	}
	if !HasPermission(models.RoleEngineer, CanViewAllData) {
		t.Error("every known role can view data")
	}
}
