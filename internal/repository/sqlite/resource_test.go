package sqlite_test

import (
	"context"
	"testing"

	"github.com/cloudsentry/cloudsentry/internal/domain/alert"
	"github.com/cloudsentry/cloudsentry/internal/domain/audit"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/errors"
	"github.com/cloudsentry/cloudsentry/internal/repository/sqlite"
	"github.com/cloudsentry/cloudsentry/internal/testutil"
)

func createTestResource(t *testing.T, repo *sqlite.ResourceRepository, externalID string) int64 {
	t.Helper()
	id, err := repo.Create(context.Background(), &resource.Resource{
		ResourceID:        externalID,
		Name:              "web-server-1",
		Type:              resource.TypeVM,
		CloudProvider:     "aws",
		Onboarded:         true,
		MonitoringEnabled: true,
	})
	if err != nil {
		t.Fatalf("Failed to create resource: %v", err)
	}
	return id
}

func TestResourceRepository_CreateAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewResourceRepository(db)
	ctx := context.Background()

	id := createTestResource(t, repo, "i-0abcd1234efgh5678")

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.ResourceID != "i-0abcd1234efgh5678" {
		t.Errorf("Expected external id preserved, got %q", got.ResourceID)
	}
	if got.Type != resource.TypeVM || got.CloudProvider != "aws" {
		t.Errorf("Expected vm/aws, got %s/%s", got.Type, got.CloudProvider)
	}
	if !got.MonitoringEnabled {
		t.Error("Expected monitoring enabled")
	}
}

func TestResourceRepository_DuplicateResourceID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewResourceRepository(db)

	createTestResource(t, repo, "i-0abcd1234efgh5678")

	_, err := repo.Create(context.Background(), &resource.Resource{
		ResourceID:    "i-0abcd1234efgh5678",
		Name:          "imposter",
		Type:          resource.TypeVM,
		CloudProvider: "aws",
	})
	if !errors.IsConflict(err) {
		t.Errorf("Expected conflict error, got %v", err)
	}
}

func TestResourceRepository_GetByResourceID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewResourceRepository(db)
	ctx := context.Background()

	createTestResource(t, repo, "i-0abcd1234efgh5678")

	got, err := repo.GetByResourceID(ctx, "i-0abcd1234efgh5678")
	if err != nil {
		t.Fatalf("GetByResourceID failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected resource")
	}

	// Unknown external id is not an error
	missing, err := repo.GetByResourceID(ctx, "i-does-not-exist")
	if err != nil {
		t.Fatalf("Expected nil error for unknown external id, got %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil resource for unknown external id, got %+v", missing)
	}
}

func TestResourceRepository_ListMonitored(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewResourceRepository(db)
	ctx := context.Background()

	createTestResource(t, repo, "i-0abcd1234efgh5678")
	if _, err := repo.Create(ctx, &resource.Resource{
		ResourceID:        "vol-0abcd1234efgh5678",
		Name:              "data-volume-1",
		Type:              resource.TypeStorage,
		CloudProvider:     "aws",
		MonitoringEnabled: false,
	}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	monitored, err := repo.ListMonitored(ctx)
	if err != nil {
		t.Fatalf("ListMonitored failed: %v", err)
	}
	if len(monitored) != 1 {
		t.Fatalf("Expected 1 monitored resource, got %d", len(monitored))
	}
	if monitored[0].ResourceID != "i-0abcd1234efgh5678" {
		t.Errorf("Expected the monitored resource, got %q", monitored[0].ResourceID)
	}
}

func TestResourceRepository_Delete_CascadesAlertsAndAuditLogs(t *testing.T) {
	db := testutil.NewTestDB(t)
	resources := sqlite.NewResourceRepository(db)
	alerts := sqlite.NewAlertRepository(db)
	auditLog := sqlite.NewAuditRepository(db)
	ctx := context.Background()

	resID := createTestResource(t, resources, "i-0abcd1234efgh5678")

	alertID, err := alerts.Create(ctx, &alert.Alert{
		ResourceID: resID,
		Status:     alert.StatusOpen,
		Severity:   alert.SeverityCritical,
		Message:    "CPU usage above threshold",
	})
	if err != nil {
		t.Fatalf("Failed to create alert: %v", err)
	}
	if _, err := auditLog.Create(ctx, &audit.Entry{
		AlertID:   alertID,
		EventType: audit.EventGenerated,
	}); err != nil {
		t.Fatalf("Failed to create audit entry: %v", err)
	}

	if err := resources.Delete(ctx, resID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := resources.GetByID(ctx, resID); !errors.IsNotFound(err) {
		t.Errorf("Expected resource gone, got %v", err)
	}
	if _, err := alerts.GetByID(ctx, alertID); !errors.IsNotFound(err) {
		t.Errorf("Expected alert cascaded, got %v", err)
	}
	entries, err := auditLog.ListByAlert(ctx, alertID)
	if err != nil {
		t.Fatalf("ListByAlert failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected audit entries cascaded, got %d", len(entries))
	}
}

func TestResourceRepository_Update(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := sqlite.NewResourceRepository(db)
	ctx := context.Background()

	id := createTestResource(t, repo, "i-0abcd1234efgh5678")

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	got.Name = "web-server-renamed"
	got.MonitoringEnabled = false
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.Name != "web-server-renamed" || updated.MonitoringEnabled {
		t.Errorf("Expected updated fields, got name=%q monitoring=%v", updated.Name, updated.MonitoringEnabled)
	}
}
