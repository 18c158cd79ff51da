package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cloudsentry/cloudsentry/internal/domain/product"
	"github.com/cloudsentry/cloudsentry/internal/pkg/errors"
)

// ProductRepository implements product.Repository using database/sql
type ProductRepository struct {
	db *DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, p *product.Product) (int64, error) {
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO products (name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`
	id, err := r.db.insertID(ctx, query,
		p.Name,
		p.Description,
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, errors.Conflict("product with this name already exists")
		}
		return 0, errors.DatabaseError("database operation failed", err)
	}
	p.ID = id

	return id, nil
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM products
		WHERE id = ?
	`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("product")
		}
		return nil, errors.DatabaseError("database operation failed", err)
	}

	return p, nil
}

// List retrieves products with offset/limit
func (r *ProductRepository) List(ctx context.Context, skip, limit int) ([]*product.Product, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM products
		ORDER BY id
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, errors.DatabaseError("database operation failed", err)
	}
	defer rows.Close()

	products := make([]*product.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, errors.DatabaseError("database operation failed", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("database operation failed", err)
	}

	return products, nil
}

// Update updates a product
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	p.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE products
		SET name = ?, description = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		p.Name,
		p.Description,
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict("product with this name already exists")
		}
		return errors.DatabaseError("database operation failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}
	if affected == 0 {
		return errors.NotFound("product")
	}

	return nil
}

// Delete deletes a product
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}
	if affected == 0 {
		return errors.NotFound("product")
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*product.Product, error) {
	var p product.Product
	var description sql.NullString
	var createdAt, updatedAt string

	if err := row.Scan(&p.ID, &p.Name, &description, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	p.Description = description.String
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &p, nil
}
