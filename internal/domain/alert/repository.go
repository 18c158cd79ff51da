package alert

import "context"

// Repository defines the interface for alert data access
type Repository interface {
	// Create creates a new alert
	Create(ctx context.Context, a *Alert) (int64, error)

	// GetByID retrieves an alert by ID
	GetByID(ctx context.Context, id int64) (*Alert, error)

	// List retrieves alerts with filters, ordered by triggered_at descending
	List(ctx context.Context, filter Filter, skip, limit int) ([]*Alert, error)

	// Update updates an alert
	Update(ctx context.Context, a *Alert) error

	// Delete deletes an alert and its audit logs
	Delete(ctx context.Context, id int64) error
}
