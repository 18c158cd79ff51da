package sqlite

import (
	"testing"

	"github.com/cloudsentry/cloudsentry/internal/config"
)

func TestDB_Rebind_Postgres(t *testing.T) {
	db := &DB{driver: driverPostgres}

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "insert placeholders numbered in order",
			query: "INSERT INTO products (name, description, created_at, updated_at) VALUES (?, ?, ?, ?)",
			want:  "INSERT INTO products (name, description, created_at, updated_at) VALUES ($1, $2, $3, $4)",
		},
		{
			name:  "filter with pagination",
			query: "SELECT id FROM alerts WHERE status = ? AND severity = ? ORDER BY id DESC LIMIT ? OFFSET ?",
			want:  "SELECT id FROM alerts WHERE status = $1 AND severity = $2 ORDER BY id DESC LIMIT $3 OFFSET $4",
		},
		{
			name:  "no placeholders",
			query: "SELECT version FROM schema_migrations",
			want:  "SELECT version FROM schema_migrations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := db.Rebind(tt.query); got != tt.want {
				t.Errorf("Rebind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDB_Rebind_SQLitePassthrough(t *testing.T) {
	db, err := New(config.DatabaseConfig{URL: ":memory:"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer db.Close()

	if db.DriverName() != driverSQLite {
		t.Fatalf("Expected sqlite driver, got %q", db.DriverName())
	}

	query := "SELECT id FROM products WHERE id = ?"
	if got := db.Rebind(query); got != query {
		t.Errorf("Expected sqlite query unchanged, got %q", got)
	}
}
