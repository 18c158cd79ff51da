package client

import "context"

// OnboardingService handles resource onboarding API calls
type OnboardingService struct {
	client *Client
}

// TriggerResponse represents the acknowledgement of a triggered run
type TriggerResponse struct {
	Detail string `json:"detail"`
}

// Trigger starts a background discovery and onboarding run. The server
// acknowledges immediately; the run completes asynchronously.
func (s *OnboardingService) Trigger(ctx context.Context) (*TriggerResponse, error) {
	var resp TriggerResponse
	if err := s.client.doRequest(ctx, "POST", "/onboarding/resources", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
