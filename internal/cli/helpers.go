// Package cli contains the cobra commands that make up the fleetdeck
// command surface. Commands gate mutations on the logged-in role, run the
// validate package before dispatching, and re-query after every command.
package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/fleetdeck/internal/auth"
	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/wire"
)

// requireUser returns the logged-in user or an error telling the caller
// to log in first.
func requireUser(ctx context.Context) (*models.User, error) {
	user, err := wire.AuthService().CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("not logged in (run: fleetdeck login <email> <password>)")
	}
	return user, nil
}

// requireAction checks the permission table for the user's role.
func requireAction(user *models.User, action string) error {
	if !auth.CanPerform(user.Role, action) {
		return fmt.Errorf("role %s is not allowed to %s", user.Role, action)
	}
	return nil
}

// changedString returns a pointer to the flag value when the flag was set
// on the command line, nil otherwise. Partial updates only carry fields
// the user actually passed.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// changedFloat is changedString for float flags.
func changedFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func colorizeShipStatus(status string) string {
	switch status {
	case models.ShipStatusActive:
		return color.New(color.FgGreen).Sprint(status)
	case models.ShipStatusUnderMaintenance:
		return color.New(color.FgYellow).Sprint(status)
	case models.ShipStatusDecommissioned:
		return color.New(color.FgRed).Sprint(status)
	}
	return status
}

func colorizeJobStatus(status string) string {
	switch status {
	case models.JobStatusOpen:
		return color.New(color.FgBlue).Sprint(status)
	case models.JobStatusInProgress:
		return color.New(color.FgYellow).Sprint(status)
	case models.JobStatusCompleted:
		return color.New(color.FgGreen).Sprint(status)
	case models.JobStatusCancelled:
		return color.New(color.FgHiBlack).Sprint(status)
	}
	return status
}

func colorizePriority(priority string) string {
	switch priority {
	case models.JobPriorityCritical:
		return color.New(color.FgRed, color.Bold).Sprint(priority)
	case models.JobPriorityHigh:
		return color.New(color.FgRed).Sprint(priority)
	case models.JobPriorityMedium:
		return color.New(color.FgYellow).Sprint(priority)
	case models.JobPriorityLow:
		return color.New(color.FgGreen).Sprint(priority)
	}
	return priority
}
