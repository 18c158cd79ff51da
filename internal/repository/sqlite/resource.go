package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/errors"
)

// ResourceRepository implements resource.Repository using database/sql
type ResourceRepository struct {
	db *DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

const resourceColumns = `id, resource_id, name, type, cloud_provider, onboarded, monitoring_enabled, created_at, updated_at`

// Create creates a new resource
func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) (int64, error) {
	now := time.Now().UTC()
	res.CreatedAt = now
	res.UpdatedAt = now

	query := `
		INSERT INTO resources (resource_id, name, type, cloud_provider, onboarded, monitoring_enabled, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.insertID(ctx, query,
		res.ResourceID,
		res.Name,
		res.Type,
		res.CloudProvider,
		res.Onboarded,
		res.MonitoringEnabled,
		res.CreatedAt.Format(time.RFC3339),
		res.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, errors.Conflict("resource with this resource_id already exists")
		}
		return 0, errors.DatabaseError("database operation failed", err)
	}
	res.ID = id

	return id, nil
}

// GetByID retrieves a resource by DB ID
func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*resource.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE id = ?`

	res, err := scanResource(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("resource")
		}
		return nil, errors.DatabaseError("database operation failed", err)
	}

	return res, nil
}

// GetByResourceID retrieves a resource by its external cloud id. Returns
// nil without error when no such resource exists, so callers can treat
// absence as a normal condition.
func (r *ResourceRepository) GetByResourceID(ctx context.Context, resourceID string) (*resource.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE resource_id = ?`

	res, err := scanResource(r.db.QueryRowContext(ctx, query, resourceID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.DatabaseError("database operation failed", err)
	}

	return res, nil
}

// List retrieves resources with offset/limit
func (r *ResourceRepository) List(ctx context.Context, skip, limit int) ([]*resource.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources ORDER BY id LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, errors.DatabaseError("database operation failed", err)
	}
	defer rows.Close()

	return collectResources(rows)
}

// ListMonitored retrieves all resources with monitoring enabled
func (r *ResourceRepository) ListMonitored(ctx context.Context) ([]*resource.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources WHERE monitoring_enabled = TRUE ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.DatabaseError("database operation failed", err)
	}
	defer rows.Close()

	return collectResources(rows)
}

// Update updates a resource
func (r *ResourceRepository) Update(ctx context.Context, res *resource.Resource) error {
	res.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE resources
		SET resource_id = ?, name = ?, type = ?, cloud_provider = ?, onboarded = ?, monitoring_enabled = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		res.ResourceID,
		res.Name,
		res.Type,
		res.CloudProvider,
		res.Onboarded,
		res.MonitoringEnabled,
		res.UpdatedAt.Format(time.RFC3339),
		res.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return errors.Conflict("resource with this resource_id already exists")
		}
		return errors.DatabaseError("database operation failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}
	if affected == 0 {
		return errors.NotFound("resource")
	}

	return nil
}

// Delete deletes a resource along with its alerts and their audit logs.
// The schema declares ON DELETE CASCADE but the child deletes run
// explicitly in the same transaction so the ownership chain does not
// depend on driver pragma state.
func (r *ResourceRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, r.db.Rebind(`
		DELETE FROM audit_logs
		WHERE alert_id IN (SELECT id FROM alerts WHERE resource_id = ?)
	`), id)
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}

	if _, err := tx.ExecContext(ctx, r.db.Rebind("DELETE FROM alerts WHERE resource_id = ?"), id); err != nil {
		return errors.DatabaseError("database operation failed", err)
	}

	result, err := tx.ExecContext(ctx, r.db.Rebind("DELETE FROM resources WHERE id = ?"), id)
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}
	if affected == 0 {
		return errors.NotFound("resource")
	}

	if err := tx.Commit(); err != nil {
		return errors.DatabaseError("database operation failed", err)
	}

	return nil
}

func scanResource(row rowScanner) (*resource.Resource, error) {
	var res resource.Resource
	var createdAt, updatedAt string

	err := row.Scan(
		&res.ID,
		&res.ResourceID,
		&res.Name,
		&res.Type,
		&res.CloudProvider,
		&res.Onboarded,
		&res.MonitoringEnabled,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	res.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return &res, nil
}

func collectResources(rows *sql.Rows) ([]*resource.Resource, error) {
	resources := make([]*resource.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, errors.DatabaseError("database operation failed", err)
		}
		resources = append(resources, res)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("database operation failed", err)
	}

	return resources, nil
}
