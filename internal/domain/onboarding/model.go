package onboarding

// Candidate is a resource discovered from a provider inventory that may
// not yet be registered for monitoring.
type Candidate struct {
	ResourceID    string `json:"resource_id"`
	Name          string `json:"name"`
	Type          string `json:"type"`
	CloudProvider string `json:"cloud_provider"`
}

// Onboarding outcomes
const (
	OutcomeOnboarded      = "onboarded"
	OutcomeAlreadyPresent = "already present"
)
