package services

import (
	"context"

	"github.com/cloudsentry/cloudsentry/internal/domain/onboarding"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/metrics"
)

// OnboardingService implements onboarding.Service
type OnboardingService struct {
	resources   resource.Repository
	discoverers []onboarding.Discoverer
	logger      *logger.Logger
}

// NewOnboardingService creates an onboarding service over the enabled
// discoverers
func NewOnboardingService(resources resource.Repository, discoverers []onboarding.Discoverer, log *logger.Logger) onboarding.Service {
	return &OnboardingService{
		resources:   resources,
		discoverers: discoverers,
		logger:      log,
	}
}

// DiscoverAll merges candidates from every enabled provider
func (s *OnboardingService) DiscoverAll(ctx context.Context) []onboarding.Candidate {
	candidates := []onboarding.Candidate{}
	for _, d := range s.discoverers {
		found := d.Discover(ctx)
		s.logger.Infof("discovered %d candidates from %s", len(found), d.Provider())
		candidates = append(candidates, found...)
	}
	return candidates
}

// Onboard registers a single candidate with monitoring enabled. A
// candidate whose external id is already registered is left untouched.
func (s *OnboardingService) Onboard(ctx context.Context, c onboarding.Candidate) (string, error) {
	existing, err := s.resources.GetByResourceID(ctx, c.ResourceID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		s.logger.Infof("resource already onboarded: %s", c.ResourceID)
		return onboarding.OutcomeAlreadyPresent, nil
	}

	res := &resource.Resource{
		ResourceID:        c.ResourceID,
		Name:              c.Name,
		Type:              c.Type,
		CloudProvider:     c.CloudProvider,
		Onboarded:         true,
		MonitoringEnabled: true,
	}
	if _, err := s.resources.Create(ctx, res); err != nil {
		return "", err
	}

	s.logger.Infof("resource onboarded: %s", c.ResourceID)
	return onboarding.OutcomeOnboarded, nil
}

// Run discovers and onboards all candidates and returns the number of
// newly onboarded resources. A failing candidate is logged and skipped
// so one bad entry cannot starve the rest.
func (s *OnboardingService) Run(ctx context.Context) int {
	onboarded := 0
	for _, c := range s.DiscoverAll(ctx) {
		outcome, err := s.Onboard(ctx, c)
		if err != nil {
			s.logger.WithError(err).Errorf("error onboarding resource %s", c.ResourceID)
			metrics.RecordOnboarding("error")
			continue
		}
		metrics.RecordOnboarding(outcome)
		if outcome == onboarding.OutcomeOnboarded {
			onboarded++
		}
	}

	s.logger.Infof("onboarding complete, %d new resources onboarded", onboarded)
	return onboarded
}
