package product

import "context"

// Repository defines the interface for product data access
type Repository interface {
	// Create creates a new product
	Create(ctx context.Context, p *Product) (int64, error)

	// GetByID retrieves a product by ID
	GetByID(ctx context.Context, id int64) (*Product, error)

	// List retrieves products with offset/limit
	List(ctx context.Context, skip, limit int) ([]*Product, error)

	// Update updates a product
	Update(ctx context.Context, p *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id int64) error
}
