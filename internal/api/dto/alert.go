package dto

// GenerateAlertRequest represents a request to raise an alert against a
// registered resource
type GenerateAlertRequest struct {
	ResourceID      int64                  `json:"resource_id" validate:"required"`
	Severity        string                 `json:"severity" validate:"required,oneof=info warning critical security"`
	Message         string                 `json:"message" validate:"required"`
	IncidentDetails map[string]interface{} `json:"incident_details,omitempty"`
}

// GenerateSecurityAlertRequest is GenerateAlertRequest with the severity
// fixed to security
type GenerateSecurityAlertRequest struct {
	ResourceID      int64                  `json:"resource_id" validate:"required"`
	Message         string                 `json:"message" validate:"required"`
	IncidentDetails map[string]interface{} `json:"incident_details,omitempty"`
}
