package onboarding

import "context"

// Discoverer lists candidate resources from one provider's inventory.
type Discoverer interface {
	Discover(ctx context.Context) []Candidate
	Provider() string
}

// Service defines the interface for resource onboarding.
type Service interface {
	// DiscoverAll merges candidates from every enabled provider
	DiscoverAll(ctx context.Context) []Candidate

	// Onboard registers a single candidate. Returns OutcomeAlreadyPresent
	// without error when the external id is already registered.
	Onboard(ctx context.Context, c Candidate) (string, error)

	// Run discovers and onboards all candidates, tolerating per-candidate
	// failures, and returns the number of newly onboarded resources. It
	// is designed to run as a detached background task.
	Run(ctx context.Context) int
}
