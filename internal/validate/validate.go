// Package validate is the explicit pre-command validation step. The
// repositories accept whatever they are given; commands run these checks
// first and refuse to dispatch on any field error.
package validate

import (
	"fmt"
	"strings"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/primary"
)

// FieldError names one rejected field and why.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Errors is a list of field errors from one validation pass.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return strings.Join(parts, "; ")
}

// OrNil returns the list as an error, or nil when empty.
func (e Errors) OrNil() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func required(errs Errors, field, value string) Errors {
	if strings.TrimSpace(value) == "" {
		errs = append(errs, FieldError{Field: field, Reason: "is required"})
	}
	return errs
}

func oneOf(errs Errors, field, value string, allowed ...string) Errors {
	for _, a := range allowed {
		if value == a {
			return errs
		}
	}
	errs = append(errs, FieldError{Field: field, Reason: fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", "))})
	return errs
}

// Ship checks a new-ship request: name, IMO and flag are required, status
// must be a known ship status.
func Ship(req primary.CreateShipRequest) error {
	var errs Errors
	errs = required(errs, "name", req.Name)
	errs = required(errs, "imo", req.IMO)
	errs = required(errs, "flag", req.Flag)
	errs = oneOf(errs, "status", req.Status,
		models.ShipStatusActive, models.ShipStatusUnderMaintenance, models.ShipStatusDecommissioned)
	return errs.OrNil()
}

// Component checks a new-component request. Whether ShipID references a
// live ship is checked by the caller against the current fleet snapshot.
func Component(req primary.CreateComponentRequest) error {
	var errs Errors
	errs = required(errs, "ship", req.ShipID)
	errs = required(errs, "name", req.Name)
	errs = required(errs, "serial", req.SerialNumber)
	errs = oneOf(errs, "status", req.Status,
		models.ComponentStatusActive, models.ComponentStatusMaintenanceRequired, models.ComponentStatusOutOfService)
	return errs.OrNil()
}

// Job checks a new-job request.
func Job(req primary.CreateJobRequest) error {
	var errs Errors
	errs = required(errs, "ship", req.ShipID)
	errs = required(errs, "component", req.ComponentID)
	errs = required(errs, "description", req.Description)
	errs = oneOf(errs, "type", req.Type,
		models.JobTypeInspection, models.JobTypeRepair, models.JobTypeReplacement, models.JobTypeRoutineMaintenance)
	errs = oneOf(errs, "priority", req.Priority,
		models.JobPriorityLow, models.JobPriorityMedium, models.JobPriorityHigh, models.JobPriorityCritical)
	errs = oneOf(errs, "status", req.Status,
		models.JobStatusOpen, models.JobStatusInProgress, models.JobStatusCompleted, models.JobStatusCancelled)
	return errs.OrNil()
}
