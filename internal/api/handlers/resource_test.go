package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloudsentry/cloudsentry/internal/api/dto"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/validator"
	"github.com/cloudsentry/cloudsentry/internal/services"
	"github.com/cloudsentry/cloudsentry/internal/testutil"
)

func newResourceHandler(t *testing.T) (*ResourceHandler, *testutil.MockResourceRepository) {
	t.Helper()

	log := logger.New(logger.Config{Level: "error", Format: "json"})
	repo := testutil.NewMockResourceRepository()
	service := services.NewResourceService(repo, log)
	return NewResourceHandler(service, log, validator.New()), repo
}

func TestResourceHandler_Create(t *testing.T) {
	handler, _ := newResourceHandler(t)

	tests := []struct {
		name           string
		body           dto.CreateResourceRequest
		expectedStatus int
	}{
		{
			name: "valid resource",
			body: dto.CreateResourceRequest{
				ResourceID:    "i-0abcd1234efgh5678",
				Name:          "web-server-1",
				Type:          resource.TypeVM,
				CloudProvider: "aws",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate external id",
			body: dto.CreateResourceRequest{
				ResourceID:    "i-0abcd1234efgh5678",
				Name:          "imposter",
				Type:          resource.TypeVM,
				CloudProvider: "aws",
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "invalid type",
			body: dto.CreateResourceRequest{
				ResourceID:    "i-other",
				Name:          "mystery-box",
				Type:          "mainframe",
				CloudProvider: "aws",
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "missing resource id",
			body: dto.CreateResourceRequest{
				Name:          "nameless",
				Type:          resource.TypeVM,
				CloudProvider: "aws",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/resources", bytes.NewBuffer(body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			handler.Create(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v, body: %s", rr.Code, tt.expectedStatus, rr.Body.String())
			}
		})
	}
}

func TestResourceHandler_Create_DefaultsMonitoringEnabled(t *testing.T) {
	handler, _ := newResourceHandler(t)

	body, _ := json.Marshal(dto.CreateResourceRequest{
		ResourceID:    "i-0abcd1234efgh5678",
		Name:          "web-server-1",
		Type:          resource.TypeVM,
		CloudProvider: "aws",
	})
	req := httptest.NewRequest(http.MethodPost, "/resources", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	handler.Create(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("handler returned wrong status code: got %v, body: %s", rr.Code, rr.Body.String())
	}

	var response struct {
		Data resource.Resource `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !response.Data.MonitoringEnabled {
		t.Error("Expected monitoring enabled by default")
	}
	if response.Data.Onboarded {
		t.Error("Expected onboarded false by default")
	}
}

func TestResourceHandler_GetAndDelete(t *testing.T) {
	handler, repo := newResourceHandler(t)

	body, _ := json.Marshal(dto.CreateResourceRequest{
		ResourceID:    "i-0abcd1234efgh5678",
		Name:          "web-server-1",
		Type:          resource.TypeVM,
		CloudProvider: "aws",
	})
	createReq := httptest.NewRequest(http.MethodPost, "/resources", bytes.NewBuffer(body))
	createReq.Header.Set("Content-Type", "application/json")
	createRR := httptest.NewRecorder()
	handler.Create(createRR, createReq)
	if createRR.Code != http.StatusCreated {
		t.Fatalf("Create failed with status %v, body: %s", createRR.Code, createRR.Body.String())
	}

	getReq := withURLParam(httptest.NewRequest(http.MethodGet, "/resources/1", nil), "id", "1")
	getRR := httptest.NewRecorder()
	handler.Get(getRR, getReq)
	if getRR.Code != http.StatusOK {
		t.Errorf("Get returned wrong status code: got %v, body: %s", getRR.Code, getRR.Body.String())
	}

	delReq := withURLParam(httptest.NewRequest(http.MethodDelete, "/resources/1", nil), "id", "1")
	delRR := httptest.NewRecorder()
	handler.Delete(delRR, delReq)
	if delRR.Code != http.StatusNoContent {
		t.Errorf("Delete returned wrong status code: got %v", delRR.Code)
	}

	missing, err := repo.GetByResourceID(createReq.Context(), "i-0abcd1234efgh5678")
	if err != nil {
		t.Fatalf("GetByResourceID failed: %v", err)
	}
	if missing != nil {
		t.Error("Expected resource removed from repository")
	}

	getGoneReq := withURLParam(httptest.NewRequest(http.MethodGet, "/resources/1", nil), "id", "1")
	getGoneRR := httptest.NewRecorder()
	handler.Get(getGoneRR, getGoneReq)
	if getGoneRR.Code != http.StatusNotFound {
		t.Errorf("Get after delete returned wrong status code: got %v", getGoneRR.Code)
	}
}
