package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/cloudsentry/cloudsentry/internal/domain/alert"
	"github.com/cloudsentry/cloudsentry/internal/pkg/errors"
)

// AlertRepository implements alert.Repository using database/sql
type AlertRepository struct {
	db *DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *DB) *AlertRepository {
	return &AlertRepository{db: db}
}

const alertColumns = `id, resource_id, status, severity, message, triggered_at, resolved_at, delivered_via, incident_details`

// Create creates a new alert
func (r *AlertRepository) Create(ctx context.Context, a *alert.Alert) (int64, error) {
	if a.TriggeredAt.IsZero() {
		a.TriggeredAt = time.Now().UTC()
	}

	details, err := marshalDetails(a.IncidentDetails)
	if err != nil {
		return 0, errors.DatabaseError("database operation failed", err)
	}

	query := `
		INSERT INTO alerts (resource_id, status, severity, message, triggered_at, resolved_at, delivered_via, incident_details)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	id, err := r.db.insertID(ctx, query,
		a.ResourceID,
		a.Status,
		a.Severity,
		a.Message,
		a.TriggeredAt.Format(time.RFC3339),
		nullableTime(a.ResolvedAt),
		nullableString(a.DeliveredVia),
		details,
	)
	if err != nil {
		return 0, errors.DatabaseError("database operation failed", err)
	}
	a.ID = id

	return id, nil
}

// GetByID retrieves an alert by ID
func (r *AlertRepository) GetByID(ctx context.Context, id int64) (*alert.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = ?`

	a, err := scanAlert(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("alert")
		}
		return nil, errors.DatabaseError("database operation failed", err)
	}

	return a, nil
}

// List retrieves alerts matching the filter, newest first
func (r *AlertRepository) List(ctx context.Context, filter alert.Filter, skip, limit int) ([]*alert.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE 1=1`
	args := []interface{}{}

	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.Severity != "" {
		query += " AND severity = ?"
		args = append(args, filter.Severity)
	}

	query += " ORDER BY triggered_at DESC, id DESC LIMIT ? OFFSET ?"
	args = append(args, limit, skip)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.DatabaseError("database operation failed", err)
	}
	defer rows.Close()

	alerts := make([]*alert.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, errors.DatabaseError("database operation failed", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.DatabaseError("database operation failed", err)
	}

	return alerts, nil
}

// Update updates an alert
func (r *AlertRepository) Update(ctx context.Context, a *alert.Alert) error {
	details, err := marshalDetails(a.IncidentDetails)
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}

	query := `
		UPDATE alerts
		SET status = ?, severity = ?, message = ?, resolved_at = ?, delivered_via = ?, incident_details = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		a.Status,
		a.Severity,
		a.Message,
		nullableTime(a.ResolvedAt),
		nullableString(a.DeliveredVia),
		details,
		a.ID,
	)
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}
	if affected == 0 {
		return errors.NotFound("alert")
	}

	return nil
}

// Delete deletes an alert and its audit logs
func (r *AlertRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, r.db.Rebind("DELETE FROM audit_logs WHERE alert_id = ?"), id); err != nil {
		return errors.DatabaseError("database operation failed", err)
	}

	result, err := tx.ExecContext(ctx, r.db.Rebind("DELETE FROM alerts WHERE id = ?"), id)
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("database operation failed", err)
	}
	if affected == 0 {
		return errors.NotFound("alert")
	}

	if err := tx.Commit(); err != nil {
		return errors.DatabaseError("database operation failed", err)
	}

	return nil
}

func scanAlert(row rowScanner) (*alert.Alert, error) {
	var a alert.Alert
	var triggeredAt string
	var resolvedAt, deliveredVia, details sql.NullString

	err := row.Scan(
		&a.ID,
		&a.ResourceID,
		&a.Status,
		&a.Severity,
		&a.Message,
		&triggeredAt,
		&resolvedAt,
		&deliveredVia,
		&details,
	)
	if err != nil {
		return nil, err
	}

	a.TriggeredAt, _ = time.Parse(time.RFC3339, triggeredAt)
	if resolvedAt.Valid {
		t, err := time.Parse(time.RFC3339, resolvedAt.String)
		if err == nil {
			a.ResolvedAt = &t
		}
	}
	a.DeliveredVia = deliveredVia.String
	if details.Valid && details.String != "" {
		if err := json.Unmarshal([]byte(details.String), &a.IncidentDetails); err != nil {
			return nil, err
		}
	}

	return &a, nil
}

func marshalDetails(details map[string]interface{}) (sql.NullString, error) {
	if details == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(details)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullableTime(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func nullableString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
