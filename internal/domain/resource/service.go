package resource

import "context"

// Update carries the optional fields of a partial resource update.
type Update struct {
	Name              *string
	Type              *string
	CloudProvider     *string
	Onboarded         *bool
	MonitoringEnabled *bool
}

// Service defines the interface for resource business logic
type Service interface {
	// Create creates a new resource
	Create(ctx context.Context, res *Resource) (*Resource, error)

	// GetByID retrieves a resource by DB ID
	GetByID(ctx context.Context, id int64) (*Resource, error)

	// List retrieves resources with offset/limit
	List(ctx context.Context, skip, limit int) ([]*Resource, error)

	// Update applies a partial update to a resource
	Update(ctx context.Context, id int64, upd Update) (*Resource, error)

	// Delete deletes a resource, cascading to its alerts
	Delete(ctx context.Context, id int64) error
}
