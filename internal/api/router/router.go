package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/cloudsentry/cloudsentry/internal/api/handlers"
	"github.com/cloudsentry/cloudsentry/internal/api/middleware"
	"github.com/cloudsentry/cloudsentry/internal/config"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/metrics"
)

// Handlers groups the HTTP handlers wired into the router
type Handlers struct {
	Health     *handlers.HealthHandler
	Product    *handlers.ProductHandler
	Resource   *handlers.ResourceHandler
	Alert      *handlers.AlertHandler
	Monitoring *handlers.MonitoringHandler
	Onboarding *handlers.OnboardingHandler
	Audit      *handlers.AuditHandler
}

// New builds the HTTP router with the global middleware stack and all
// application routes
func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(metrics.Middleware)

	// Health checks and telemetry
	r.Get("/health", h.Health.Healthz)
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Handle("/metrics", metrics.Handler())

	// Products
	r.Route("/products", func(r chi.Router) {
		r.Post("/", h.Product.Create)
		r.Get("/", h.Product.List)
		r.Get("/{id}", h.Product.Get)
		r.Put("/{id}", h.Product.Update)
		r.Delete("/{id}", h.Product.Delete)
	})

	// Resources
	r.Route("/resources", func(r chi.Router) {
		r.Post("/", h.Resource.Create)
		r.Get("/", h.Resource.List)
		r.Get("/{id}", h.Resource.Get)
		r.Put("/{id}", h.Resource.Update)
		r.Delete("/{id}", h.Resource.Delete)
	})

	// Resource metrics
	r.Route("/metrics/resources", func(r chi.Router) {
		r.Get("/", h.Monitoring.GetAll)
		r.Get("/{resource_id}", h.Monitoring.Get)
	})

	// Alerts
	r.Route("/alerts", func(r chi.Router) {
		r.Post("/", h.Alert.Generate)
		r.Post("/security", h.Alert.GenerateSecurity)
		r.Get("/", h.Alert.List)
		r.Get("/{id}", h.Alert.Get)
		r.Post("/{id}/resolve", h.Alert.Resolve)
		r.Delete("/{id}", h.Alert.Delete)
	})

	// Onboarding
	r.Post("/onboarding/resources/", h.Onboarding.Trigger)
	r.Post("/onboarding/resources", h.Onboarding.Trigger)

	// Audit logs
	r.Get("/audit/logs/", h.Audit.List)
	r.Get("/audit/logs", h.Audit.List)

	return r
}
