package audit

import "context"

// Repository defines the interface for audit log data access. The log is
// append-only: there is no update or delete.
type Repository interface {
	// Create appends a new audit entry
	Create(ctx context.Context, e *Entry) (int64, error)

	// GetByID retrieves an audit entry by ID
	GetByID(ctx context.Context, id int64) (*Entry, error)

	// List retrieves entries ordered by creation time, most recent first
	List(ctx context.Context, skip, limit int) ([]*Entry, error)

	// ListByAlert retrieves entries for one alert, most recent first
	ListByAlert(ctx context.Context, alertID int64) ([]*Entry, error)
}
