package client

import (
	"context"
	"fmt"
)

// ResourceService handles resource registry API calls
type ResourceService struct {
	client *Client
}

// CreateResourceRequest represents a request to register a resource
type CreateResourceRequest struct {
	ResourceID        string `json:"resource_id"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	CloudProvider     string `json:"cloud_provider"`
	Onboarded         *bool  `json:"onboarded,omitempty"`
	MonitoringEnabled *bool  `json:"monitoring_enabled,omitempty"`
}

// UpdateResourceRequest represents a partial resource update. The
// external resource_id is immutable and cannot be changed here.
type UpdateResourceRequest struct {
	Name              *string `json:"name,omitempty"`
	Type              *string `json:"type,omitempty"`
	CloudProvider     *string `json:"cloud_provider,omitempty"`
	Onboarded         *bool   `json:"onboarded,omitempty"`
	MonitoringEnabled *bool   `json:"monitoring_enabled,omitempty"`
}

// List retrieves resources with skip/limit pagination
func (s *ResourceService) List(ctx context.Context, opts *ListOptions) ([]Resource, error) {
	path := "/resources" + encodeListOptions(opts)

	var resources []Resource
	if err := s.client.doRequest(ctx, "GET", path, nil, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

// Get retrieves a single resource by ID
func (s *ResourceService) Get(ctx context.Context, id int64) (*Resource, error) {
	var res Resource
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/resources/%d", id), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Create registers a new resource
func (s *ResourceService) Create(ctx context.Context, req CreateResourceRequest) (*Resource, error) {
	var res Resource
	if err := s.client.doRequest(ctx, "POST", "/resources", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Update applies a partial update to a resource
func (s *ResourceService) Update(ctx context.Context, id int64, req UpdateResourceRequest) (*Resource, error) {
	var res Resource
	if err := s.client.doRequest(ctx, "PUT", fmt.Sprintf("/resources/%d", id), req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Delete deletes a resource along with its alerts and their audit logs
func (s *ResourceService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, "DELETE", fmt.Sprintf("/resources/%d", id), nil, nil)
}
