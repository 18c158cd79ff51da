package services

import (
	"context"

	"github.com/cloudsentry/cloudsentry/internal/domain/audit"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
)

// AuditService implements audit.Service
type AuditService struct {
	repo   audit.Repository
	logger *logger.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo audit.Repository, log *logger.Logger) audit.Service {
	return &AuditService{repo: repo, logger: log}
}

// Record appends an entry to the audit trail
func (s *AuditService) Record(ctx context.Context, e *audit.Entry) (*audit.Entry, error) {
	if _, err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// GetByID retrieves an audit entry by ID
func (s *AuditService) GetByID(ctx context.Context, id int64) (*audit.Entry, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves entries ordered by creation time, most recent first
func (s *AuditService) List(ctx context.Context, skip, limit int) ([]*audit.Entry, error) {
	return s.repo.List(ctx, skip, limit)
}
