package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cloudsentry/cloudsentry/internal/domain/monitoring"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/utils"
)

// MonitoringHandler handles resource metrics requests
type MonitoringHandler struct {
	service monitoring.Service
	logger  *logger.Logger
}

// NewMonitoringHandler creates a new monitoring handler
func NewMonitoringHandler(service monitoring.Service, log *logger.Logger) *MonitoringHandler {
	return &MonitoringHandler{
		service: service,
		logger:  log,
	}
}

// GetAll returns metrics for every monitoring-enabled resource
func (h *MonitoringHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	results, err := h.service.GetAllResourcesMetrics(r.Context())
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to fetch resource metrics")
		utils.WriteAppError(w, err, "Failed to fetch resource metrics")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, results)
}

// Get returns metrics for one resource by its external id. An unknown id
// yields an empty series.
func (h *MonitoringHandler) Get(w http.ResponseWriter, r *http.Request) {
	resourceID := chi.URLParam(r, "resource_id")

	result, err := h.service.GetResourceMetrics(r.Context(), resourceID)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to fetch resource metrics")
		utils.WriteAppError(w, err, "Failed to fetch resource metrics")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, result)
}
