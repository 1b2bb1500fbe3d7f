package validate

import (
	"strings"
	"testing"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/primary"
)

func TestShip(t *testing.T) {
	err := Ship(primary.CreateShipRequest{
		Name:   "Ever Given",
		IMO:    "9811000",
		Flag:   "Panama",
		Status: models.ShipStatusActive,
	})
	if err != nil {
		t.Errorf("valid ship rejected: %v", err)
	}
}

func TestShip_MissingFields(t *testing.T) {
	err := Ship(primary.CreateShipRequest{Status: models.ShipStatusActive})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	msg := err.Error()
	for _, field := range []string{"name", "imo", "flag"} {
		if !strings.Contains(msg, field) {
			t.Errorf("expected %s in error, got %q", field, msg)
		}
	}
}

func TestShip_BadStatus(t *testing.T) {
	err := Ship(primary.CreateShipRequest{
		Name: "Ever Given", IMO: "9811000", Flag: "Panama", Status: "Sunk",
	})
	if err == nil {
		t.Fatal("expected status rejection")
	}
	if !strings.Contains(err.Error(), "status") {
		t.Errorf("expected status in error, got %q", err.Error())
	}
}

func TestComponent(t *testing.T) {
	err := Component(primary.CreateComponentRequest{
		ShipID:       "s1",
		Name:         "Main Engine",
		SerialNumber: "ME-1234",
		Status:       models.ComponentStatusActive,
	})
	if err != nil {
		t.Errorf("valid component rejected: %v", err)
	}

	err = Component(primary.CreateComponentRequest{Status: models.ComponentStatusActive})
	if err == nil {
		t.Fatal("expected validation errors")
	}
	if !strings.Contains(err.Error(), "serial") {
		t.Errorf("expected serial in error, got %q", err.Error())
	}
}

func TestJob(t *testing.T) {
	err := Job(primary.CreateJobRequest{
		ShipID:      "s1",
		ComponentID: "c1",
		Description: "Engine inspection",
		Type:        models.JobTypeInspection,
		Priority:    models.JobPriorityHigh,
		Status:      models.JobStatusOpen,
	})
	if err != nil {
		t.Errorf("valid job rejected: %v", err)
	}
}

func TestJob_BadEnums(t *testing.T) {
	err := Job(primary.CreateJobRequest{
		ShipID:      "s1",
		ComponentID: "c1",
		Description: "Engine inspection",
		Type:        "Demolition",
		Priority:    "Urgent",
		Status:      "Paused",
	})
	if err == nil {
		t.Fatal("expected enum rejections")
	}
	msg := err.Error()
	for _, field := range []string{"type", "priority", "status"} {
		if !strings.Contains(msg, field) {
			t.Errorf("expected %s in error, got %q", field, msg)
		}
	}
}

func TestErrors_OrNil(t *testing.T) {
	var errs Errors
	if errs.OrNil() != nil {
		t.Error("empty list must collapse to nil")
	}

	errs = append(errs, FieldError{Field: "name", Reason: "is required"})
	err := errs.OrNil()
	if err == nil {
		t.Fatal("non-empty list must be an error")
	}
	if err.Error() != "name: is required" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}
