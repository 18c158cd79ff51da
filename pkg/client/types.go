package client

import "time"

// Product represents a catalog product
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Resource represents a registered cloud resource
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

// Alert represents a raised alert
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

// AuditLog represents an alert lifecycle audit entry
type AuditLog struct {
	ID           int64                  `json:"id"`
	AlertID      int64                  `json:"alert_id"`
	EventType    string                 `json:"event_type"`
	EventDetails map[string]interface{} `json:"event_details,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
	Actor        string                 `json:"actor"`
}

// MetricPoint represents one timestamped observation
type MetricPoint struct {
	Timestamp time.Time `json:"timestamp"`
	CPU       *float64  `json:"cpu,omitempty"`
	Memory    *float64  `json:"memory,omitempty"`
	Network   *float64  `json:"network,omitempty"`
	Storage   *float64  `json:"storage,omitempty"`
}

// ResourceMetrics represents a metric series tagged with its resource
type ResourceMetrics struct {
	ResourceID string        `json:"resource_id"`
	Metrics    []MetricPoint `json:"metrics"`
}

// ListOptions contains skip/limit pagination options
type ListOptions struct {
	Skip  int
	Limit int
}
