package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/cloudsentry/cloudsentry/internal/api/dto"
	"github.com/cloudsentry/cloudsentry/internal/domain/product"
	"github.com/cloudsentry/cloudsentry/internal/pkg/errors"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/utils"
	"github.com/cloudsentry/cloudsentry/internal/pkg/validator"
)

// ProductHandler handles product CRUD requests
type ProductHandler struct {
	service   product.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewProductHandler creates a new product handler
func NewProductHandler(service product.Service, log *logger.Logger, val *validator.Validator) *ProductHandler {
	return &ProductHandler{
		service:   service,
		logger:    log,
		validator: val,
	}
}

// Create creates a new product
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	p, err := h.service.Create(r.Context(), &product.Product{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to create product")
		utils.WriteAppError(w, err, "Failed to create product")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, p)
}

// List returns products with skip/limit pagination
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePagination(r)

	products, err := h.service.List(r.Context(), page.Skip, page.Limit)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list products")
		utils.WriteAppError(w, err, "Failed to list products")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, products)
}

// Get returns a single product
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid product id"))
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get product")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, p)
}

// Update applies a partial update to a product
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid product id"))
		return
	}

	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	p, err := h.service.Update(r.Context(), id, product.Update{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to update product")
		utils.WriteAppError(w, err, "Failed to update product")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, p)
}

// Delete deletes a product
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r)
	if err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid product id"))
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.ErrorWithErr(err, "Failed to delete product")
		utils.WriteAppError(w, err, "Failed to delete product")
		return
	}

	utils.WriteNoContent(w)
}

// parseIDParam parses the numeric {id} path parameter
func parseIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
