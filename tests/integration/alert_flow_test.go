package integration

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/cloudsentry/cloudsentry/internal/api/handlers"
	"github.com/cloudsentry/cloudsentry/internal/api/router"
	"github.com/cloudsentry/cloudsentry/internal/config"
	"github.com/cloudsentry/cloudsentry/internal/domain/onboarding"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/validator"
	"github.com/cloudsentry/cloudsentry/internal/providers"
	"github.com/cloudsentry/cloudsentry/internal/repository/sqlite"
	"github.com/cloudsentry/cloudsentry/internal/services"
	"github.com/cloudsentry/cloudsentry/internal/testutil"
	"github.com/cloudsentry/cloudsentry/pkg/client"
)

// newTestAPI wires the full stack (sqlite, services, router) behind an
// httptest server and returns an API client pointed at it.
func newTestAPI(t *testing.T) *client.Client {
	t.Helper()

	db := testutil.NewTestDB(t)
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	val := validator.New()

	productRepo := sqlite.NewProductRepository(db)
	resourceRepo := sqlite.NewResourceRepository(db)
	alertRepo := sqlite.NewAlertRepository(db)
	auditRepo := sqlite.NewAuditRepository(db)

	fetcher := providers.NewRouter(log)
	discoverers := []onboarding.Discoverer{
		providers.NewAWSDiscoverer(config.AWSConfig{}, log),
	}

	notifier := services.NewChannelNotifier(config.EmailConfig{}, config.WebhookConfig{}, log)
	h := &router.Handlers{
		Health:     handlers.NewHealthHandler(db.DB, log),
		Product:    handlers.NewProductHandler(services.NewProductService(productRepo, log), log, val),
		Resource:   handlers.NewResourceHandler(services.NewResourceService(resourceRepo, log), log, val),
		Alert:      handlers.NewAlertHandler(services.NewAlertService(alertRepo, resourceRepo, auditRepo, notifier, log), log, val),
		Monitoring: handlers.NewMonitoringHandler(services.NewMonitoringService(resourceRepo, fetcher, log), log),
		Onboarding: handlers.NewOnboardingHandler(services.NewOnboardingService(resourceRepo, discoverers, log), log),
		Audit:      handlers.NewAuditHandler(services.NewAuditService(auditRepo, log), log),
	}

	cfg := &config.Config{}
	srv := httptest.NewServer(router.New(cfg, log, h))
	t.Cleanup(srv.Close)

	return client.NewClient(client.Config{BaseURL: srv.URL})
}

// TestAlertLifecycle covers register -> generate -> list -> resolve ->
// audit trail -> cascade delete through the HTTP API.
func TestAlertLifecycle(t *testing.T) {
	c := newTestAPI(t)
	ctx := context.Background()

	if _, err := c.Health(ctx); err != nil {
		t.Fatalf("Health check failed: %v", err)
	}
	if _, err := c.Ready(ctx); err != nil {
		t.Fatalf("Readiness check failed: %v", err)
	}

	res, err := c.Resources().Create(ctx, client.CreateResourceRequest{
		ResourceID:    "i-integration-1",
		Name:          "integration-vm",
		Type:          "vm",
		CloudProvider: "aws",
	})
	if err != nil {
		t.Fatalf("Create resource failed: %v", err)
	}
	if !res.MonitoringEnabled {
		t.Error("Expected monitoring enabled by default")
	}

	a, err := c.Alerts().Generate(ctx, client.GenerateAlertRequest{
		ResourceID:      res.ID,
		Severity:        "critical",
		Message:         "CPU usage above threshold",
		IncidentDetails: map[string]interface{}{"cpu": 97.5},
	})
	if err != nil {
		t.Fatalf("Generate alert failed: %v", err)
	}
	if a.Status != "open" {
		t.Errorf("Expected open alert, got %q", a.Status)
	}

	sec, err := c.Alerts().GenerateSecurity(ctx, client.GenerateSecurityAlertRequest{
		ResourceID: res.ID,
		Message:    "Suspicious login detected",
	})
	if err != nil {
		t.Fatalf("Generate security alert failed: %v", err)
	}
	if sec.Severity != "security" {
		t.Errorf("Expected security severity, got %q", sec.Severity)
	}

	open, err := c.Alerts().List(ctx, &client.AlertListOptions{Status: "open"})
	if err != nil {
		t.Fatalf("List alerts failed: %v", err)
	}
	if len(open) != 2 {
		t.Errorf("Expected 2 open alerts, got %d", len(open))
	}

	resolved, err := c.Alerts().Resolve(ctx, a.ID)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.Status != "resolved" || resolved.ResolvedAt == nil {
		t.Errorf("Expected resolved alert with timestamp, got %+v", resolved)
	}

	// Resolving again is a no-op
	again, err := c.Alerts().Resolve(ctx, a.ID)
	if err != nil {
		t.Fatalf("Repeat resolve failed: %v", err)
	}
	if !again.ResolvedAt.Equal(*resolved.ResolvedAt) {
		t.Error("Expected resolved_at unchanged on repeat resolve")
	}

	entries, err := c.AuditLogs().List(ctx, nil)
	if err != nil {
		t.Fatalf("List audit logs failed: %v", err)
	}
	// generated x2 + resolved x1
	if len(entries) != 3 {
		t.Errorf("Expected 3 audit entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.Actor != "system" {
			t.Errorf("Expected system actor, got %q", e.Actor)
		}
	}

	// Deleting the resource removes its alerts and their audit trail
	if err := c.Resources().Delete(ctx, res.ID); err != nil {
		t.Fatalf("Delete resource failed: %v", err)
	}
	if _, err := c.Alerts().Get(ctx, a.ID); err == nil {
		t.Error("Expected alert removed with its resource")
	}
	entries, err = c.AuditLogs().List(ctx, nil)
	if err != nil {
		t.Fatalf("List audit logs failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Expected audit log emptied by cascade, got %d entries", len(entries))
	}
}

// TestMetricsUnknownResource verifies an unknown external id yields an
// empty series rather than an error.
func TestMetricsUnknownResource(t *testing.T) {
	c := newTestAPI(t)

	metrics, err := c.Metrics().Get(context.Background(), "i-does-not-exist")
	if err != nil {
		t.Fatalf("Get metrics failed: %v", err)
	}
	if metrics.ResourceID != "i-does-not-exist" {
		t.Errorf("Expected requested id echoed back, got %q", metrics.ResourceID)
	}
	if len(metrics.Metrics) != 0 {
		t.Errorf("Expected empty series, got %d points", len(metrics.Metrics))
	}
}

// TestProductCRUD covers the product catalog endpoints end to end.
func TestProductCRUD(t *testing.T) {
	c := newTestAPI(t)
	ctx := context.Background()

	p, err := c.Products().Create(ctx, client.CreateProductRequest{
		Name:        "payments",
		Description: "Payment processing service",
	})
	if err != nil {
		t.Fatalf("Create product failed: %v", err)
	}

	if _, err := c.Products().Create(ctx, client.CreateProductRequest{Name: "payments"}); err == nil {
		t.Error("Expected conflict for duplicate name")
	} else if apiErr, ok := err.(*client.APIError); !ok || !apiErr.IsConflict() {
		t.Errorf("Expected conflict error, got %v", err)
	}

	newName := "payments-v2"
	updated, err := c.Products().Update(ctx, p.ID, client.UpdateProductRequest{Name: &newName})
	if err != nil {
		t.Fatalf("Update product failed: %v", err)
	}
	if updated.Name != newName {
		t.Errorf("Expected renamed product, got %q", updated.Name)
	}

	if err := c.Products().Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete product failed: %v", err)
	}
	if _, err := c.Products().Get(ctx, p.ID); err == nil {
		t.Error("Expected product removed")
	}
}
