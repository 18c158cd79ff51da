package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/cloudsentry/cloudsentry/internal/api/dto"
	"github.com/cloudsentry/cloudsentry/internal/domain/alert"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/validator"
	"github.com/cloudsentry/cloudsentry/internal/services"
	"github.com/cloudsentry/cloudsentry/internal/testutil"
)

type noopNotifier struct{}

func (noopNotifier) Deliver(ctx context.Context, a *alert.Alert, res *resource.Resource) []string {
	return nil
}

func newAlertHandler(t *testing.T) (*AlertHandler, alert.Service, int64) {
	t.Helper()

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	resources := testutil.NewMockResourceRepository()
	service := services.NewAlertService(
		testutil.NewMockAlertRepository(),
		resources,
		testutil.NewMockAuditRepository(),
		noopNotifier{},
		log,
	)

	resID, err := resources.Create(context.Background(), &resource.Resource{
		ResourceID:    "i-0abcd1234efgh5678",
		Name:          "web-server-1",
		Type:          resource.TypeVM,
		CloudProvider: "aws",
	})
	if err != nil {
		t.Fatalf("Failed to create test resource: %v", err)
	}

	return NewAlertHandler(service, log, validator.New()), service, resID
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestAlertHandler_Generate(t *testing.T) {
	handler, _, resID := newAlertHandler(t)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{
			name: "valid alert",
			body: dto.GenerateAlertRequest{
				ResourceID: resID,
				Severity:   alert.SeverityCritical,
				Message:    "CPU usage above threshold",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "unknown resource",
			body: dto.GenerateAlertRequest{
				ResourceID: 9999,
				Severity:   alert.SeverityInfo,
				Message:    "Orphaned alert",
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "invalid severity",
			body: dto.GenerateAlertRequest{
				ResourceID: resID,
				Severity:   "catastrophic",
				Message:    "Bad severity",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing message",
			body: dto.GenerateAlertRequest{
				ResourceID: resID,
				Severity:   alert.SeverityInfo,
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/alerts", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.Generate(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v, body: %s", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestAlertHandler_GenerateSecurity(t *testing.T) {
	handler, _, resID := newAlertHandler(t)

	body, _ := json.Marshal(dto.GenerateSecurityAlertRequest{
		ResourceID: resID,
		Message:    "Suspicious login detected",
	})
	req := httptest.NewRequest(http.MethodPost, "/alerts/security", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.GenerateSecurity(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("handler returned wrong status code: got %v, body: %s", rr.Code, rr.Body.String())
	}

	var response struct {
		Data alert.Alert `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Data.Severity != alert.SeveritySecurity {
		t.Errorf("Expected severity %q, got %q", alert.SeveritySecurity, response.Data.Severity)
	}
}

func TestAlertHandler_Resolve(t *testing.T) {
	handler, service, resID := newAlertHandler(t)

	a, err := service.Generate(context.Background(), resID, alert.SeverityWarning, "Disk filling up", nil)
	if err != nil {
		t.Fatalf("Failed to generate alert: %v", err)
	}

	tests := []struct {
		name           string
		alertID        string
		expectedStatus int
	}{
		{
			name:           "resolve existing alert",
			alertID:        "1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "resolve already resolved alert",
			alertID:        "1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "resolve unknown alert",
			alertID:        "9999",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "invalid id",
			alertID:        "abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/alerts/"+tt.alertID+"/resolve", nil)
			req = withURLParam(req, "id", tt.alertID)
			rr := httptest.NewRecorder()

			handler.Resolve(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v, body: %s", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}

	resolved, err := service.GetByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("Failed to fetch alert: %v", err)
	}
	if resolved.Status != alert.StatusResolved {
		t.Errorf("Expected alert resolved, got %q", resolved.Status)
	}
}

func TestAlertHandler_List(t *testing.T) {
	handler, service, resID := newAlertHandler(t)
	ctx := context.Background()

	if _, err := service.Generate(ctx, resID, alert.SeverityCritical, "CPU usage above threshold", nil); err != nil {
		t.Fatalf("Failed to generate alert: %v", err)
	}
	if _, err := service.Generate(ctx, resID, alert.SeverityInfo, "Backup completed late", nil); err != nil {
		t.Fatalf("Failed to generate alert: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/alerts?severity=critical", nil)
	rr := httptest.NewRecorder()

	handler.List(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v, body: %s", rr.Code, rr.Body.String())
	}

	var response struct {
		Data []alert.Alert `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Data) != 1 {
		t.Errorf("Expected 1 critical alert, got %d", len(response.Data))
	}
}

func TestAlertHandler_Delete(t *testing.T) {
	handler, service, resID := newAlertHandler(t)

	a, err := service.Generate(context.Background(), resID, alert.SeverityInfo, "Transient blip", nil)
	if err != nil {
		t.Fatalf("Failed to generate alert: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/alerts/1", nil)
	req = withURLParam(req, "id", "1")
	rr := httptest.NewRecorder()

	handler.Delete(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("handler returned wrong status code: got %v", rr.Code)
	}
	if _, err := service.GetByID(context.Background(), a.ID); err == nil {
		t.Error("Expected alert to be deleted")
	}
}
