package resource

import "time"

// Resource is a monitored cloud asset identified by a provider-assigned
// external id.
type Resource struct {
	ID                int64     `json:"id"`
	ResourceID        string    `json:"resource_id"`
	Name              string    `json:"name"`
	Type              string    `json:"type"`
	CloudProvider     string    `json:"cloud_provider"`
	Onboarded         bool      `json:"onboarded"`
	MonitoringEnabled bool      `json:"monitoring_enabled"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Resource types
const (
	TypeVM       = "vm"
	TypeStorage  = "storage"
	TypeDatabase = "database"
	TypeNetwork  = "network"
	TypeOther    = "other"
)

// ValidTypes lists the accepted resource type values.
var ValidTypes = []string{TypeVM, TypeStorage, TypeDatabase, TypeNetwork, TypeOther}
