package handlers

import (
	"context"
	"net/http"

	"github.com/cloudsentry/cloudsentry/internal/domain/onboarding"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/utils"
)

// OnboardingHandler handles resource onboarding requests
type OnboardingHandler struct {
	service onboarding.Service
	logger  *logger.Logger
}

// NewOnboardingHandler creates a new onboarding handler
func NewOnboardingHandler(service onboarding.Service, log *logger.Logger) *OnboardingHandler {
	return &OnboardingHandler{
		service: service,
		logger:  log,
	}
}

// Trigger starts discovery and onboarding in the background and returns
// 202 immediately. The background run gets its own context so it
// survives the request ending.
func (h *OnboardingHandler) Trigger(w http.ResponseWriter, r *http.Request) {
	go func() {
		h.service.Run(context.Background())
	}()

	utils.WriteSuccess(w, http.StatusAccepted, map[string]string{
		"detail": "Resource onboarding triggered.",
	})
}
