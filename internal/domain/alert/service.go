package alert

import "context"

// Service defines the interface for the alert lifecycle.
type Service interface {
	// Generate creates an open alert for the resource, delivers it over
	// the configured channels and records a "generated" audit entry.
	Generate(ctx context.Context, resourceID int64, severity, message string, details map[string]interface{}) (*Alert, error)

	// GenerateSecurity is Generate with severity forced to security.
	GenerateSecurity(ctx context.Context, resourceID int64, message string, details map[string]interface{}) (*Alert, error)

	// Resolve marks an alert resolved and records a "resolved" audit
	// entry. Resolving an already resolved alert is a no-op.
	Resolve(ctx context.Context, id int64) (*Alert, error)

	// GetByID retrieves an alert by ID
	GetByID(ctx context.Context, id int64) (*Alert, error)

	// List retrieves alerts filtered by status and severity
	List(ctx context.Context, filter Filter, skip, limit int) ([]*Alert, error)

	// Delete deletes an alert, cascading to its audit logs
	Delete(ctx context.Context, id int64) error
}
