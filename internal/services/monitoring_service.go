package services

import (
	"context"

	"github.com/cloudsentry/cloudsentry/internal/domain/monitoring"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
)

// MonitoringService implements monitoring.Service
type MonitoringService struct {
	resources resource.Repository
	fetcher   monitoring.Fetcher
	logger    *logger.Logger
}

// NewMonitoringService creates a new monitoring service
func NewMonitoringService(resources resource.Repository, fetcher monitoring.Fetcher, log *logger.Logger) monitoring.Service {
	return &MonitoringService{
		resources: resources,
		fetcher:   fetcher,
		logger:    log,
	}
}

// GetResourceMetrics fetches metrics for one resource by external id.
// An unknown id yields an empty series tagged with the requested id, not
// an error.
func (s *MonitoringService) GetResourceMetrics(ctx context.Context, resourceID string) (*monitoring.ResourceMetrics, error) {
	res, err := s.resources.GetByResourceID(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		s.logger.Warnf("resource not found for metrics: %s", resourceID)
		return &monitoring.ResourceMetrics{
			ResourceID: resourceID,
			Metrics:    []monitoring.MetricPoint{},
		}, nil
	}

	return &monitoring.ResourceMetrics{
		ResourceID: resourceID,
		Metrics:    s.fetcher.FetchMetrics(ctx, res),
	}, nil
}

// GetAllResourcesMetrics fetches metrics for every monitoring-enabled
// resource. A backend failure for one resource contributes an empty
// series and does not abort the sweep.
func (s *MonitoringService) GetAllResourcesMetrics(ctx context.Context) ([]*monitoring.ResourceMetrics, error) {
	resources, err := s.resources.ListMonitored(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*monitoring.ResourceMetrics, 0, len(resources))
	for _, res := range resources {
		results = append(results, &monitoring.ResourceMetrics{
			ResourceID: res.ResourceID,
			Metrics:    s.fetcher.FetchMetrics(ctx, res),
		})
	}

	s.logger.Infof("fetched metrics for %d resources", len(results))
	return results, nil
}
