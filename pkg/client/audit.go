package client

import "context"

// AuditService handles audit log API calls
type AuditService struct {
	client *Client
}

// List retrieves audit log entries, newest first
func (s *AuditService) List(ctx context.Context, opts *ListOptions) ([]AuditLog, error) {
	path := "/audit/logs" + encodeListOptions(opts)

	var entries []AuditLog
	if err := s.client.doRequest(ctx, "GET", path, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
