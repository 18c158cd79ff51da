package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AlertService handles alert lifecycle API calls
type AlertService struct {
	client *Client
}

// GenerateAlertRequest represents a request to raise an alert
type GenerateAlertRequest struct {
	ResourceID      int64                  `json:"resource_id"`
	Severity        string                 `json:"severity"`
	Message         string                 `json:"message"`
	IncidentDetails map[string]interface{} `json:"incident_details,omitempty"`
}

// GenerateSecurityAlertRequest represents a request to raise a security
// alert; the severity is fixed server side.
type GenerateSecurityAlertRequest struct {
	ResourceID      int64                  `json:"resource_id"`
	Message         string                 `json:"message"`
	IncidentDetails map[string]interface{} `json:"incident_details,omitempty"`
}

// AlertListOptions contains options for listing alerts
type AlertListOptions struct {
	ListOptions
	Status   string
	Severity string
}

// List retrieves alerts, newest first, optionally filtered by status
// and severity
func (s *AlertService) List(ctx context.Context, opts *AlertListOptions) ([]Alert, error) {
	query := url.Values{}
	if opts != nil {
		if opts.Skip > 0 {
			query.Set("skip", strconv.Itoa(opts.Skip))
		}
		if opts.Limit > 0 {
			query.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Status != "" {
			query.Set("status", opts.Status)
		}
		if opts.Severity != "" {
			query.Set("severity", opts.Severity)
		}
	}

	path := "/alerts"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var alerts []Alert
	if err := s.client.doRequest(ctx, "GET", path, nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// Get retrieves a single alert by ID
func (s *AlertService) Get(ctx context.Context, id int64) (*Alert, error) {
	var a Alert
	if err := s.client.doRequest(ctx, "GET", fmt.Sprintf("/alerts/%d", id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Generate raises an alert against a registered resource
func (s *AlertService) Generate(ctx context.Context, req GenerateAlertRequest) (*Alert, error) {
	var a Alert
	if err := s.client.doRequest(ctx, "POST", "/alerts", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// GenerateSecurity raises a security severity alert
func (s *AlertService) GenerateSecurity(ctx context.Context, req GenerateSecurityAlertRequest) (*Alert, error) {
	var a Alert
	if err := s.client.doRequest(ctx, "POST", "/alerts/security", req, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Resolve marks an alert resolved. Resolving an already resolved alert
// returns it unchanged.
func (s *AlertService) Resolve(ctx context.Context, id int64) (*Alert, error) {
	var a Alert
	if err := s.client.doRequest(ctx, "POST", fmt.Sprintf("/alerts/%d/resolve", id), nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete deletes an alert and its audit logs
func (s *AlertService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, "DELETE", fmt.Sprintf("/alerts/%d", id), nil, nil)
}
