package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cloudsentry/cloudsentry/internal/domain/audit"
	"github.com/cloudsentry/cloudsentry/internal/pkg/errors"
)

// AuditRepository implements audit.Repository using database/sql
type AuditRepository struct {
	db *DB
}

// NewAuditRepository creates a new audit log repository
func NewAuditRepository(db *DB) *AuditRepository {
	return &AuditRepository{db: db}
}

const auditColumns = `id, alert_id, event_type, event_details, created_at, actor`

// Create appends a new audit entry
func (r *AuditRepository) Create(ctx context.Context, e *audit.Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Actor == "" {
		e.Actor = audit.DefaultActor
	}

	details, err := marshalDetails(e.EventDetails)
	if err != nil {
		return 0, errors.DatabaseError("database operation failed", err)
	}

	query := `
		INSERT INTO audit_logs (alert_id, event_type, event_details, created_at, actor)
		VALUES (?, ?, ?, ?, ?)
	`
	id, err := r.db.insertID(ctx, query,
		e.AlertID,
		e.EventType,
		details,
		e.CreatedAt.Format(time.RFC3339),
		e.Actor,
	)
	if err != nil {
		return 0, errors.DatabaseError("database operation failed", err)
	}
	e.ID = id

	return id, nil
}

// GetByID retrieves an audit entry by ID
func (r *AuditRepository) GetByID(ctx context.Context, id int64) (*audit.Entry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_logs WHERE id = ?`

	e, err := scanAuditEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("audit log entry")
		}
		return nil, errors.DatabaseError("database operation failed", err)
	}

	return e, nil
}

// List retrieves entries ordered by creation time, most recent first
func (r *AuditRepository) List(ctx context.Context, skip, limit int) ([]*audit.Entry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_logs ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`

	rows, err := r.db.QueryContext(ctx, query, limit, skip)
	if err != nil {
		return nil, errors.DatabaseError("database operation failed", err)
	}
	defer rows.Close()

	return collectAuditEntries(rows)
}

// ListByAlert retrieves entries for one alert, most recent first
func (r *AuditRepository) ListByAlert(ctx context.Context, alertID int64) ([]*audit.Entry, error) {
	query := `SELECT ` + auditColumns + ` FROM audit_logs WHERE alert_id = ? ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, alertID)
	if err != nil {
		return nil, errors.DatabaseError("database operation failed", err)
	}
	defer rows.Close()

	return collectAuditEntries(rows)
}

func scanAuditEntry(row rowScanner) (*audit.Entry, error) {
	var e audit.Entry
	var createdAt string
	var details sql.NullString

	err := row.Scan(&e.ID, &e.AlertID, &e.EventType, &details, &createdAt, &e.Actor)
	if err != nil {
		return nil, err
	}

	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	if details.Valid && details.String != "" {
		if err := json.Unmarshal([]byte(details.String), &e.EventDetails); err != nil {
			return nil, err
		}
	}

	return &e, nil
}

func collectAuditEntries(rows *sql.Rows) ([]*audit.Entry, error) {
	entries := make([]*audit.Entry, 0)
	for rows.Next() {
		e, err := scanAuditEntry(rows)
		if err != nil {
			return nil, errors.DatabaseError("database operation failed", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("database operation failed", err)
	}

	return entries, nil
}
