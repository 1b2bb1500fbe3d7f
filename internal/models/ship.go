package models

// Ship statuses
const (
	ShipStatusActive           = "Active"
	ShipStatusUnderMaintenance = "Under Maintenance"
	ShipStatusDecommissioned   = "Decommissioned"
)

// Ship is the root entity a fleet is made of. Components and jobs hang off
// it by id; nothing cascades when a ship is deleted.
type Ship struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	IMO              string `json:"imo"`
	Flag             string `json:"flag"`
	Status           string `json:"status"`
	RegistrationDate string `json:"registrationDate"`
	Description      string `json:"description,omitempty"`
}
