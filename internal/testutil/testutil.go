package testutil

import (
	"testing"

	"github.com/cloudsentry/cloudsentry/internal/config"
	"github.com/cloudsentry/cloudsentry/internal/repository/sqlite"
	"github.com/cloudsentry/cloudsentry/migrations"
)

// NewTestDB creates an in-memory SQLite database with the application
// schema applied
func NewTestDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.New(config.DatabaseConfig{URL: ":memory:"})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := sqlite.RunMigrations(db, migrations.GetFS()); err != nil {
		t.Fatalf("Failed to apply test schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}
