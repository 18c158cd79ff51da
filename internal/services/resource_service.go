package services

import (
	"context"

	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
)

// ResourceService implements resource.Service
type ResourceService struct {
	repo   resource.Repository
	logger *logger.Logger
}

// NewResourceService creates a new resource service
func NewResourceService(repo resource.Repository, log *logger.Logger) resource.Service {
	return &ResourceService{repo: repo, logger: log}
}

// Create creates a new resource
func (s *ResourceService) Create(ctx context.Context, res *resource.Resource) (*resource.Resource, error) {
	if _, err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}

	s.logger.Infof("resource created: id=%d resource_id=%s", res.ID, res.ResourceID)
	return res, nil
}

// GetByID retrieves a resource by DB ID
func (s *ResourceService) GetByID(ctx context.Context, id int64) (*resource.Resource, error) {
	return s.repo.GetByID(ctx, id)
}

// List retrieves resources with offset/limit
func (s *ResourceService) List(ctx context.Context, skip, limit int) ([]*resource.Resource, error) {
	return s.repo.List(ctx, skip, limit)
}

// Update applies a partial update: only the fields present in upd change.
// The external resource_id is immutable once registered.
func (s *ResourceService) Update(ctx context.Context, id int64, upd resource.Update) (*resource.Resource, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		res.Name = *upd.Name
	}
	if upd.Type != nil {
		res.Type = *upd.Type
	}
	if upd.CloudProvider != nil {
		res.CloudProvider = *upd.CloudProvider
	}
	if upd.Onboarded != nil {
		res.Onboarded = *upd.Onboarded
	}
	if upd.MonitoringEnabled != nil {
		res.MonitoringEnabled = *upd.MonitoringEnabled
	}

	if err := s.repo.Update(ctx, res); err != nil {
		return nil, err
	}

	return res, nil
}

// Delete deletes a resource, cascading to its alerts and their audit logs
func (s *ResourceService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Infof("resource deleted: id=%d", id)
	return nil
}
