package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewClient(Config{BaseURL: srv.URL})
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func TestClient_UnwrapsEnvelope(t *testing.T) {
	srv, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/resources/7" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		writeEnvelope(w, http.StatusOK, Resource{
			ID:            7,
			ResourceID:    "i-0abcd1234efgh5678",
			Name:          "web-server-1",
			Type:          "vm",
			CloudProvider: "aws",
		})
	})
	defer srv.Close()

	res, err := c.Resources().Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if res.ID != 7 || res.ResourceID != "i-0abcd1234efgh5678" {
		t.Errorf("Unexpected resource %+v", res)
	}
}

func TestClient_APIError(t *testing.T) {
	srv, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"error": map[string]interface{}{
				"code":    "NOT_FOUND",
				"message": "alert not found",
			},
		})
	})
	defer srv.Close()

	_, err := c.Alerts().Get(context.Background(), 42)
	if err == nil {
		t.Fatal("Expected error")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("Expected *APIError, got %T", err)
	}
	if !apiErr.IsNotFound() {
		t.Errorf("Expected not found, got status %d", apiErr.StatusCode)
	}
	if apiErr.Code != "NOT_FOUND" {
		t.Errorf("Expected code NOT_FOUND, got %q", apiErr.Code)
	}
}

func TestClient_AlertListOptions(t *testing.T) {
	srv, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("status") != "open" || q.Get("severity") != "critical" {
			t.Errorf("Unexpected query %q", r.URL.RawQuery)
		}
		if q.Get("skip") != "10" || q.Get("limit") != "5" {
			t.Errorf("Unexpected pagination %q", r.URL.RawQuery)
		}
		writeEnvelope(w, http.StatusOK, []Alert{})
	})
	defer srv.Close()

	_, err := c.Alerts().List(context.Background(), &AlertListOptions{
		ListOptions: ListOptions{Skip: 10, Limit: 5},
		Status:      "open",
		Severity:    "critical",
	})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
}

func TestClient_DeleteNoContent(t *testing.T) {
	srv, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	if err := c.Products().Delete(context.Background(), 3); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestClient_OnboardingTrigger(t *testing.T) {
	srv, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/onboarding/resources" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		writeEnvelope(w, http.StatusAccepted, map[string]string{
			"detail": "Resource onboarding triggered.",
		})
	})
	defer srv.Close()

	resp, err := c.Onboarding().Trigger(context.Background())
	if err != nil {
		t.Fatalf("Trigger failed: %v", err)
	}
	if resp.Detail != "Resource onboarding triggered." {
		t.Errorf("Unexpected detail %q", resp.Detail)
	}
}
