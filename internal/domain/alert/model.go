package alert

import "time"

// Alert records a detected condition on a resource, with a severity and
// lifecycle status.
type Alert struct {
	ID              int64                  `json:"id"`
	ResourceID      int64                  `json:"resource_id"`
	Status          string                 `json:"status"`
	Severity        string                 `json:"severity"`
	Message         string                 `json:"message"`
	TriggeredAt     time.Time              `json:"triggered_at"`
	ResolvedAt      *time.Time             `json:"resolved_at,omitempty"`
	DeliveredVia    string                 `json:"delivered_via,omitempty"`
	IncidentDetails map[string]interface{} `json:"incident_details,omitempty"`
}

// Alert status. Resolved is terminal. Acknowledged is a valid target state
// but no current operation transitions to it.
const (
	StatusOpen         = "open"
	StatusAcknowledged = "acknowledged"
	StatusResolved     = "resolved"
)

// Alert severity levels
const (
	SeverityInfo     = "info"
	SeverityWarning  = "warning"
	SeverityCritical = "critical"
	SeveritySecurity = "security"
)

// Filter contains alert filtering options
type Filter struct {
	Status   string
	Severity string
}
