package audit

import "context"

// Service defines the interface for the audit trail.
type Service interface {
	// Record appends an entry to the audit trail
	Record(ctx context.Context, e *Entry) (*Entry, error)

	// GetByID retrieves an audit entry by ID
	GetByID(ctx context.Context, id int64) (*Entry, error)

	// List retrieves entries ordered by creation time, most recent first
	List(ctx context.Context, skip, limit int) ([]*Entry, error)
}
