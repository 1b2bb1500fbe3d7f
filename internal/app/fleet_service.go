package app

import (
	"context"
	"fmt"

	"github.com/example/fleetdeck/internal/models"
	"github.com/example/fleetdeck/internal/ports/primary"
	"github.com/example/fleetdeck/internal/ports/secondary"
)

// FleetServiceImpl implements the FleetService interface.
type FleetServiceImpl struct {
	shipRepo      secondary.ShipRepository
	componentRepo secondary.ComponentRepository
}

// NewFleetService creates a new FleetService with injected dependencies.
func NewFleetService(shipRepo secondary.ShipRepository, componentRepo secondary.ComponentRepository) *FleetServiceImpl {
	return &FleetServiceImpl{
		shipRepo:      shipRepo,
		componentRepo: componentRepo,
	}
}

// ListShips returns every ship.
func (s *FleetServiceImpl) ListShips(ctx context.Context) ([]models.Ship, error) {
	return s.shipRepo.List(ctx)
}

// GetShip returns one ship, or (nil, nil) when absent.
func (s *FleetServiceImpl) GetShip(ctx context.Context, id string) (*models.Ship, error) {
	return s.shipRepo.GetByID(ctx, id)
}

// AddShip creates a ship with a generated id.
func (s *FleetServiceImpl) AddShip(ctx context.Context, req primary.CreateShipRequest) (*models.Ship, error) {
	ship, err := s.shipRepo.Add(ctx, models.Ship{
		Name:             req.Name,
		IMO:              req.IMO,
		Flag:             req.Flag,
		Status:           req.Status,
		RegistrationDate: req.RegistrationDate,
		Description:      req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add ship: %w", err)
	}
	return ship, nil
}

// UpdateShip shallow-merges the request into the ship. An unknown id is a
// silent no-op returning (nil, nil).
func (s *FleetServiceImpl) UpdateShip(ctx context.Context, id string, req primary.UpdateShipRequest) (*models.Ship, error) {
	return s.shipRepo.Update(ctx, id, secondary.ShipPatch{
		Name:             req.Name,
		IMO:              req.IMO,
		Flag:             req.Flag,
		Status:           req.Status,
		RegistrationDate: req.RegistrationDate,
		Description:      req.Description,
	})
}

// DeleteShip removes the ship record only; dependent components and jobs
// stay behind with dangling ship references.
func (s *FleetServiceImpl) DeleteShip(ctx context.Context, id string) error {
	return s.shipRepo.Delete(ctx, id)
}

// ListComponents returns every component.
func (s *FleetServiceImpl) ListComponents(ctx context.Context) ([]models.Component, error) {
	return s.componentRepo.List(ctx)
}

// ListComponentsByShip returns the components installed on one ship.
func (s *FleetServiceImpl) ListComponentsByShip(ctx context.Context, shipID string) ([]models.Component, error) {
	return s.componentRepo.ListByShip(ctx, shipID)
}

// GetComponent returns one component, or (nil, nil) when absent.
func (s *FleetServiceImpl) GetComponent(ctx context.Context, id string) (*models.Component, error) {
	return s.componentRepo.GetByID(ctx, id)
}

// AddComponent creates a component with a generated id. The ship
// reference is taken as given; callers check it against the current fleet
// before dispatching.
func (s *FleetServiceImpl) AddComponent(ctx context.Context, req primary.CreateComponentRequest) (*models.Component, error) {
	component, err := s.componentRepo.Add(ctx, models.Component{
		ShipID:              req.ShipID,
		Name:                req.Name,
		SerialNumber:        req.SerialNumber,
		InstallDate:         req.InstallDate,
		LastMaintenanceDate: req.LastMaintenanceDate,
		NextMaintenanceDate: req.NextMaintenanceDate,
		Status:              req.Status,
		Description:         req.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add component: %w", err)
	}
	return component, nil
}

// UpdateComponent shallow-merges the request into the component. An
// unknown id is a silent no-op returning (nil, nil).
func (s *FleetServiceImpl) UpdateComponent(ctx context.Context, id string, req primary.UpdateComponentRequest) (*models.Component, error) {
	return s.componentRepo.Update(ctx, id, secondary.ComponentPatch{
		ShipID:              req.ShipID,
		Name:                req.Name,
		SerialNumber:        req.SerialNumber,
		InstallDate:         req.InstallDate,
		LastMaintenanceDate: req.LastMaintenanceDate,
		NextMaintenanceDate: req.NextMaintenanceDate,
		Status:              req.Status,
		Description:         req.Description,
	})
}

// DeleteComponent removes the component record only; jobs referencing it
// stay behind.
func (s *FleetServiceImpl) DeleteComponent(ctx context.Context, id string) error {
	return s.componentRepo.Delete(ctx, id)
}

// Ensure FleetServiceImpl implements the interface.
var _ primary.FleetService = (*FleetServiceImpl)(nil)
