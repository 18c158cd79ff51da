package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cloudsentry/cloudsentry/internal/api/dto"
	"github.com/cloudsentry/cloudsentry/internal/domain/alert"
	"github.com/cloudsentry/cloudsentry/internal/pkg/errors"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/utils"
	"github.com/cloudsentry/cloudsentry/internal/pkg/validator"
)

// AlertHandler handles alert lifecycle requests
type AlertHandler struct {
	service   alert.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(service alert.Service, log *logger.Logger, val *validator.Validator) *AlertHandler {
	return &AlertHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// Generate raises an alert against a registered resource
func (h *AlertHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	a, err := h.service.Generate(r.Context(), req.ResourceID, req.Severity, req.Message, req.IncidentDetails)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to generate alert")
		utils.WriteAppError(w, err, "Failed to generate alert")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, a)
}

// GenerateSecurity raises a security severity alert
func (h *AlertHandler) GenerateSecurity(w http.ResponseWriter, r *http.Request) {
	var req dto.GenerateSecurityAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	a, err := h.service.GenerateSecurity(r.Context(), req.ResourceID, req.Message, req.IncidentDetails)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to generate security alert")
		utils.WriteAppError(w, err, "Failed to generate security alert")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, a)
}

// List returns alerts, optionally filtered by status and severity
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePagination(r)
	filter := alert.Filter{
		Status:   r.URL.Query().Get("status"),
		Severity: r.URL.Query().Get("severity"),
	}

	alerts, err := h.service.List(r.Context(), filter, page.Skip, page.Limit)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list alerts")
		utils.WriteAppError(w, err, "Failed to list alerts")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, alerts)
}

// Get returns a single alert
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid alert id"))
		return
	}

	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get alert")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, a)
}

// Resolve marks an alert resolved. Resolving an already resolved alert
// returns it unchanged.
func (h *AlertHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid alert id"))
		return
	}

	a, err := h.service.Resolve(r.Context(), id)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to resolve alert")
		utils.WriteAppError(w, err, "Failed to resolve alert")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, a)
}

// Delete deletes an alert and its audit logs
func (h *AlertHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid alert id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.ErrorWithErr(err, "Failed to delete alert")
		utils.WriteAppError(w, err, "Failed to delete alert")
		return
	}

	utils.WriteNoContent(w)
}
