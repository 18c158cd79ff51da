package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cloudsentry/cloudsentry/internal/api/handlers"
	"github.com/cloudsentry/cloudsentry/internal/api/router"
	"github.com/cloudsentry/cloudsentry/internal/config"
	"github.com/cloudsentry/cloudsentry/internal/domain/onboarding"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/validator"
	"github.com/cloudsentry/cloudsentry/internal/providers"
	"github.com/cloudsentry/cloudsentry/internal/repository/sqlite"
	"github.com/cloudsentry/cloudsentry/internal/services"
	"github.com/cloudsentry/cloudsentry/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	db, err := sqlite.New(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := sqlite.RunMigrations(db, migrations.GetFS()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Info("Database migrations applied")

	// Repositories
	productRepo := sqlite.NewProductRepository(db)
	resourceRepo := sqlite.NewResourceRepository(db)
	alertRepo := sqlite.NewAlertRepository(db)
	auditRepo := sqlite.NewAuditRepository(db)

	// Monitoring backends
	fetcher := providers.NewRouter(log)
	fetcher.Register("aws", providers.NewCloudWatchFetcher(cfg.AWS, log))
	fetcher.Register("prometheus", providers.NewPrometheusFetcher(cfg.Monitor, log))

	// Discovery backends
	var discoverers []onboarding.Discoverer
	if cfg.Discovery.EnableAWS {
		discoverers = append(discoverers, providers.NewAWSDiscoverer(cfg.AWS, log))
	}
	if cfg.Discovery.EnablePrometheus {
		discoverers = append(discoverers, providers.NewPrometheusDiscoverer(cfg.Monitor, log))
	}

	// Services
	notifier := services.NewChannelNotifier(cfg.Email, cfg.Webhooks, log)
	productService := services.NewProductService(productRepo, log)
	resourceService := services.NewResourceService(resourceRepo, log)
	alertService := services.NewAlertService(alertRepo, resourceRepo, auditRepo, notifier, log)
	auditService := services.NewAuditService(auditRepo, log)
	monitoringService := services.NewMonitoringService(resourceRepo, fetcher, log)
	onboardingService := services.NewOnboardingService(resourceRepo, discoverers, log)

	// HTTP handlers
	val := validator.New()
	h := &router.Handlers{
		Health:     handlers.NewHealthHandler(db.DB, log),
		Product:    handlers.NewProductHandler(productService, log, val),
		Resource:   handlers.NewResourceHandler(resourceService, log, val),
		Alert:      handlers.NewAlertHandler(alertService, log, val),
		Monitoring: handlers.NewMonitoringHandler(monitoringService, log),
		Onboarding: handlers.NewOnboardingHandler(onboardingService, log),
		Audit:      handlers.NewAuditHandler(auditService, log),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, log, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorf("Forced shutdown: %v", err)
	}
	log.Info("Server stopped")
}
