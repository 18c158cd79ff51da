package handlers

import (
	"net/http"

	"github.com/cloudsentry/cloudsentry/internal/domain/audit"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/utils"
)

// AuditHandler handles audit log requests
type AuditHandler struct {
	service audit.Service
	logger  *logger.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service audit.Service, log *logger.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		logger:  log,
	}
}

// List returns audit entries, most recent first
func (h *AuditHandler) List(w http.ResponseWriter, r *http.Request) {
	page := utils.ParsePagination(r)

	entries, err := h.service.List(r.Context(), page.Skip, page.Limit)
	if err != nil {
		h.logger.ErrorWithErr(err, "Failed to list audit logs")
		utils.WriteAppError(w, err, "Failed to list audit logs")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, entries)
}
