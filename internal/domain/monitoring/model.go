package monitoring

import "time"

// MetricPoint is one timestamped observation about a resource. Only the
// fields the backend reports are populated; the built-in CloudWatch and
// Prometheus backends populate cpu only.
type MetricPoint struct {
	Timestamp time.Time `json:"timestamp"`
	CPU       *float64  `json:"cpu,omitempty"`
	Memory    *float64  `json:"memory,omitempty"`
	Network   *float64  `json:"network,omitempty"`
	Storage   *float64  `json:"storage,omitempty"`
}

// ResourceMetrics tags a metric series with the external resource id it
// was requested for. An unknown id yields an empty series, not an error.
type ResourceMetrics struct {
	ResourceID string        `json:"resource_id"`
	Metrics    []MetricPoint `json:"metrics"`
}
