package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/cloudsentry/cloudsentry/internal/domain/onboarding"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
)

// recordingOnboarder signals when the background run is invoked
type recordingOnboarder struct {
	mu   sync.Mutex
	runs int
	done chan struct{}
}

func (s *recordingOnboarder) DiscoverAll(ctx context.Context) []onboarding.Candidate {
	return nil
}

func (s *recordingOnboarder) Onboard(ctx context.Context, c onboarding.Candidate) (string, error) {
	return onboarding.OutcomeOnboarded, nil
}

func (s *recordingOnboarder) Run(ctx context.Context) int {
	s.mu.Lock()
	s.runs++
	s.mu.Unlock()
	close(s.done)
	return 0
}

func TestOnboardingHandler_Trigger(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	service := &recordingOnboarder{done: make(chan struct{})}
	handler := NewOnboardingHandler(service, log)

	req := httptest.NewRequest(http.MethodPost, "/onboarding/resources", nil)
	rr := httptest.NewRecorder()

	handler.Trigger(rr, req)

	if rr.Code != http.StatusAccepted {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusAccepted)
	}

	var response struct {
		Data map[string]string `json:"data"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Data["detail"] != "Resource onboarding triggered." {
		t.Errorf("Expected trigger detail message, got %q", response.Data["detail"])
	}

	select {
	case <-service.done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected background run to start")
	}
}
