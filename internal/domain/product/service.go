package product

import "context"

// Update carries the optional fields of a partial product update.
type Update struct {
	Name        *string
	Description *string
}

// Service defines the interface for product business logic
type Service interface {
	// Create creates a new product
	Create(ctx context.Context, p *Product) (*Product, error)

	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id int64) (*Product, error)

	// List retrieves products with offset/limit
	List(ctx context.Context, skip, limit int) ([]*Product, error)

	// Update applies a partial update to a product
	Update(ctx context.Context, id int64, upd Update) (*Product, error)

	// Delete deletes a product
	Delete(ctx context.Context, id int64) error
}
