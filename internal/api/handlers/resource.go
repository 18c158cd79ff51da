package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/cloudsentry/cloudsentry/internal/api/dto"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/errors"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/utils"
	"github.com/cloudsentry/cloudsentry/internal/pkg/validator"
)

// ResourceHandler handles resource CRUD requests
type ResourceHandler struct {
	service   resource.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewResourceHandler creates a new resource handler
func NewResourceHandler(service resource.Service, log *logger.Logger, val *validator.Validator) *ResourceHandler {
	return &ResourceHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// Create registers a new resource
func (h *ResourceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	res := &resource.Resource{
		ResourceID:        req.ResourceID,
		Name:              req.Name,
		Type:              req.Type,
		CloudProvider:     req.CloudProvider,
		MonitoringEnabled: true,
	}
	if req.Onboarded != nil {
		res.Onboarded = *req.Onboarded
	}
	if req.MonitoringEnabled != nil {
		res.MonitoringEnabled = *req.MonitoringEnabled
	}

	created, err := h.service.Create(r.Context(), res)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to create resource")
		utils.WriteAppError(w, err, "Failed to create resource")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, created)
}

// List returns resources with skip/limit pagination
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePagination(r)

	resources, err := h.service.List(r.Context(), page.Skip, page.Limit)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list resources")
		utils.WriteAppError(w, err, "Failed to list resources")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, resources)
}

// Get returns a single resource
func (h *ResourceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid resource id"))
		return
	}

	res, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get resource")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, res)
}

// Update applies a partial update to a resource
func (h *ResourceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid resource id"))
		return
	}

	var req dto.UpdateResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	res, err := h.service.Update(r.Context(), id, resource.Update{
		Name:              req.Name,
		Type:              req.Type,
		CloudProvider:     req.CloudProvider,
		Onboarded:         req.Onboarded,
		MonitoringEnabled: req.MonitoringEnabled,
	})
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to update resource")
		utils.WriteAppError(w, err, "Failed to update resource")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, res)
}

// Delete deletes a resource along with its alerts and their audit logs
func (h *ResourceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid resource id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.ErrorWithErr(err, "Failed to delete resource")
		utils.WriteAppError(w, err, "Failed to delete resource")
		return
	}

	utils.WriteNoContent(w)
}
