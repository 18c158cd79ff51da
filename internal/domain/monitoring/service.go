package monitoring

import (
	"context"

	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
)

// Fetcher retrieves metric points for a resource from the backend selected
// by the resource's cloud provider label. Fetchers never fail: any backend
// or transport error degrades to an empty slice.
type Fetcher interface {
	FetchMetrics(ctx context.Context, res *resource.Resource) []MetricPoint
}

// Service defines the interface for resource metrics retrieval.
type Service interface {
	// GetResourceMetrics fetches metrics for one resource by external id
	GetResourceMetrics(ctx context.Context, resourceID string) (*ResourceMetrics, error)

	// GetAllResourcesMetrics fetches metrics for every monitoring-enabled
	// resource, continuing past per-resource failures
	GetAllResourcesMetrics(ctx context.Context) ([]*ResourceMetrics, error)
}
