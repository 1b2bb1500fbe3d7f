package models

// Component statuses
const (
	ComponentStatusActive              = "Active"
	ComponentStatusMaintenanceRequired = "Maintenance Required"
	ComponentStatusOutOfService        = "Out of Service"
)

// Component is a piece of equipment installed on exactly one ship.
// Dates are stored as strings (YYYY-MM-DD) to keep the persisted
// collections human-diffable; the derive package parses them on demand.
// Whether a component is overdue is never persisted - it is recomputed
// from NextMaintenanceDate on every query.
type Component struct {
	ID                  string `json:"id"`
	ShipID              string `json:"shipId"`
	Name                string `json:"name"`
	SerialNumber        string `json:"serialNumber"`
	InstallDate         string `json:"installDate"`
	LastMaintenanceDate string `json:"lastMaintenanceDate"`
	NextMaintenanceDate string `json:"nextMaintenanceDate"`
	Status              string `json:"status"`
	Description         string `json:"description,omitempty"`
}
