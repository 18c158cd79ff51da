package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cloudsentry/cloudsentry/internal/config"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	driverSQLite   = "sqlite"
	driverPostgres = "postgres"
)

// DB wraps the connection pool with the placeholder dialect of the
// driver backing it. Repository queries are written with ? placeholders
// and rewritten to the $N form when the pool runs on postgres.
type DB struct {
	*sql.DB
	driver string
}

// New creates a new database connection. A postgres:// connection string
// selects the postgres driver; anything else is treated as a sqlite file
// path.
func New(cfg config.DatabaseConfig) (*DB, error) {
	var db *sql.DB
	var err error
	var driver string

	if strings.HasPrefix(cfg.URL, "postgres://") || strings.HasPrefix(cfg.URL, "postgresql://") {
		driver = driverPostgres
		db, err = sql.Open("postgres", cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}

		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	} else {
		driver = driverSQLite
		db, err = sql.Open("sqlite", cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}

		// WAL for better concurrency; foreign_keys so ON DELETE CASCADE
		// is honored
		if _, err := db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
		if _, err := db.Exec("PRAGMA foreign_keys=ON;"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}

		// SQLite only supports one writer at a time
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(time.Hour)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db, driver: driver}, nil
}

// DriverName reports which driver the pool was opened with.
func (d *DB) DriverName() string {
	return d.driver
}

// Rebind rewrites ? placeholders into the $N form postgres expects.
// Repository queries carry no literal question marks, so a plain scan
// is enough. SQLite queries pass through unchanged.
func (d *DB) Rebind(query string) string {
	if d.driver != driverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}

	return b.String()
}

// ExecContext rebinds the query for the active driver before executing it.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return d.DB.ExecContext(ctx, d.Rebind(query), args...)
}

// QueryContext rebinds the query for the active driver before running it.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return d.DB.QueryContext(ctx, d.Rebind(query), args...)
}

// QueryRowContext rebinds the query for the active driver before running it.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return d.DB.QueryRowContext(ctx, d.Rebind(query), args...)
}

// insertID executes an INSERT and returns the generated row id. lib/pq
// does not implement LastInsertId, so the postgres path appends
// RETURNING id and scans it instead.
func (d *DB) insertID(ctx context.Context, query string, args ...interface{}) (int64, error) {
	if d.driver == driverPostgres {
		var id int64
		err := d.DB.QueryRowContext(ctx, d.Rebind(query+" RETURNING id"), args...).Scan(&id)
		return id, err
	}

	result, err := d.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
