package services

import (
	"context"
	"strings"
	"time"

	"github.com/cloudsentry/cloudsentry/internal/domain/alert"
	"github.com/cloudsentry/cloudsentry/internal/domain/audit"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/metrics"
)

// AlertService implements alert.Service
type AlertService struct {
	alerts    alert.Repository
	resources resource.Repository
	auditLog  audit.Repository
	notifier  Notifier
	logger    *logger.Logger
}

// NewAlertService creates a new alert service
func NewAlertService(
	alerts alert.Repository,
	resources resource.Repository,
	auditLog audit.Repository,
	notifier Notifier,
	log *logger.Logger,
) alert.Service {
	return &AlertService{
		alerts:    alerts,
		resources: resources,
		auditLog:  auditLog,
		notifier:  notifier,
		logger:    log,
	}
}

// Generate creates an open alert for the resource, delivers it and records
// a "generated" audit entry. The alert exists in the open state whether or
// not any delivery channel succeeds; delivered_via records only the
// channels that did.
func (s *AlertService) Generate(ctx context.Context, resourceID int64, severity, message string, details map[string]interface{}) (*alert.Alert, error) {
	res, err := s.resources.GetByID(ctx, resourceID)
	if err != nil {
		return nil, err
	}

	a := &alert.Alert{
		ResourceID:      res.ID,
		Status:          alert.StatusOpen,
		Severity:        severity,
		Message:         message,
		TriggeredAt:     time.Now().UTC(),
		IncidentDetails: details,
	}
	if _, err := s.alerts.Create(ctx, a); err != nil {
		return nil, err
	}

	delivered := s.notifier.Deliver(ctx, a, res)
	a.DeliveredVia = strings.Join(delivered, ",")
	if err := s.alerts.Update(ctx, a); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"alert_id":      a.ID,
		"resource_id":   res.ResourceID,
		"severity":      a.Severity,
		"delivered_via": a.DeliveredVia,
	}).Info("alert generated")
	metrics.RecordAlertGenerated(a.Severity)

	entry := &audit.Entry{
		AlertID:      a.ID,
		EventType:    audit.EventGenerated,
		EventDetails: details,
		Actor:        audit.DefaultActor,
	}
	if _, err := s.auditLog.Create(ctx, entry); err != nil {
		return nil, err
	}

	return a, nil
}

// GenerateSecurity is Generate with severity forced to security
func (s *AlertService) GenerateSecurity(ctx context.Context, resourceID int64, message string, details map[string]interface{}) (*alert.Alert, error) {
	return s.Generate(ctx, resourceID, alert.SeveritySecurity, message, details)
}

// Resolve marks an alert resolved and records a "resolved" audit entry.
// An already resolved alert is returned unchanged with no new entry.
func (s *AlertService) Resolve(ctx context.Context, id int64) (*alert.Alert, error) {
	a, err := s.alerts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if a.Status == alert.StatusResolved {
		s.logger.Infof("alert already resolved: id=%d", id)
		return a, nil
	}

	now := time.Now().UTC()
	a.Status = alert.StatusResolved
	a.ResolvedAt = &now
	if err := s.alerts.Update(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Infof("alert resolved: id=%d", id)
	metrics.RecordAlertResolved()

	entry := &audit.Entry{
		AlertID:      a.ID,
		EventType:    audit.EventResolved,
		EventDetails: map[string]interface{}{"message": a.Message},
		Actor:        audit.DefaultActor,
	}
	if _, err := s.auditLog.Create(ctx, entry); err != nil {
		return nil, err
	}

	return a, nil
}

// GetByID retrieves an alert by ID
func (s *AlertService) GetByID(ctx context.Context, id int64) (*alert.Alert, error) {
	return s.alerts.GetByID(ctx, id)
}

// List retrieves alerts filtered by status and severity
func (s *AlertService) List(ctx context.Context, filter alert.Filter, skip, limit int) ([]*alert.Alert, error) {
	return s.alerts.List(ctx, filter, skip, limit)
}

// Delete deletes an alert, cascading to its audit logs
func (s *AlertService) Delete(ctx context.Context, id int64) error {
	return s.alerts.Delete(ctx, id)
}
