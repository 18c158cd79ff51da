package client

import (
	"context"
	"fmt"
	"net/url"
)

// MetricsService handles resource metrics API calls
type MetricsService struct {
	client *Client
}

// GetAll retrieves metrics for every monitoring-enabled resource
func (s *MetricsService) GetAll(ctx context.Context) ([]ResourceMetrics, error) {
	var results []ResourceMetrics
	if err := s.client.doRequest(ctx, "GET", "/metrics/resources", nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Get retrieves metrics for one resource by its external id. An unknown
// id yields an empty series, not an error.
func (s *MetricsService) Get(ctx context.Context, resourceID string) (*ResourceMetrics, error) {
	path := fmt.Sprintf("/metrics/resources/%s", url.PathEscape(resourceID))

	var result ResourceMetrics
	if err := s.client.doRequest(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
