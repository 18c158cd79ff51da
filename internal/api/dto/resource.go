package dto

// CreateResourceRequest represents a resource registration request
type CreateResourceRequest struct {
	ResourceID        string `json:"resource_id" validate:"required,max=128"`
	Name              string `json:"name" validate:"required,max=128"`
	Type              string `json:"type" validate:"required,oneof=vm storage database network other"`
	CloudProvider     string `json:"cloud_provider" validate:"required,max=64"`
	Onboarded         *bool  `json:"onboarded,omitempty"`
	MonitoringEnabled *bool  `json:"monitoring_enabled,omitempty"`
}

// UpdateResourceRequest represents a partial resource update. The external
// resource_id is immutable and therefore absent here.
type UpdateResourceRequest struct {
	Name              *string `json:"name,omitempty" validate:"omitempty,min=1,max=128"`
	Type              *string `json:"type,omitempty" validate:"omitempty,oneof=vm storage database network other"`
	CloudProvider     *string `json:"cloud_provider,omitempty" validate:"omitempty,min=1,max=64"`
	Onboarded         *bool   `json:"onboarded,omitempty"`
	MonitoringEnabled *bool   `json:"monitoring_enabled,omitempty"`
}
