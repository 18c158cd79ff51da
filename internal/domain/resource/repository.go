package resource

import "context"

// Repository defines the interface for resource data access
type Repository interface {
	// Create creates a new resource
	Create(ctx context.Context, res *Resource) (int64, error)

	// GetByID retrieves a resource by DB ID
	GetByID(ctx context.Context, id int64) (*Resource, error)

	// GetByResourceID retrieves a resource by its external cloud id.
	// Returns nil without error when no such resource exists.
	GetByResourceID(ctx context.Context, resourceID string) (*Resource, error)

	// List retrieves resources with offset/limit
	List(ctx context.Context, skip, limit int) ([]*Resource, error)

	// ListMonitored retrieves all resources with monitoring enabled
	ListMonitored(ctx context.Context) ([]*Resource, error)

	// Update updates a resource
	Update(ctx context.Context, res *Resource) error

	// Delete deletes a resource and, per the ownership model, all of
	// its alerts and their audit logs
	Delete(ctx context.Context, id int64) error
}
