package providers

import (
	"context"
	"fmt"
	"testing"
	"time"

	promv1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/cloudsentry/cloudsentry/internal/config"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
)

type fakePromAPI struct {
	query string
	rng   promv1.Range
	value model.Value
	err   error
}

func (f *fakePromAPI) QueryRange(ctx context.Context, query string, r promv1.Range, opts ...promv1.Option) (model.Value, promv1.Warnings, error) {
	f.query = query
	f.rng = r
	return f.value, nil, f.err
}

func testNode() *resource.Resource {
	return &resource.Resource{
		ID:            1,
		ResourceID:    "node1.example.com",
		Name:          "node1",
		Type:          resource.TypeVM,
		CloudProvider: "prometheus",
	}
}

func TestPrometheusFetcher_FetchMetrics(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	t1 := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	fake := &fakePromAPI{
		value: model.Matrix{
			&model.SampleStream{
				Values: []model.SamplePair{
					{Timestamp: model.TimeFromUnix(t1.Unix()), Value: 0.42},
					{Timestamp: model.TimeFromUnix(t1.Add(5 * time.Minute).Unix()), Value: 0.55},
				},
			},
		},
	}

	f := &PrometheusFetcher{cfg: config.MonitorConfig{}, log: log, api: fake}

	points := f.FetchMetrics(context.Background(), testNode())

	if len(points) != 2 {
		t.Fatalf("Expected 2 points, got %d", len(points))
	}
	if *points[0].CPU != 0.42 || *points[1].CPU != 0.55 {
		t.Errorf("Expected raw sample values, got %v and %v", *points[0].CPU, *points[1].CPU)
	}
	if !points[0].Timestamp.Equal(t1) {
		t.Errorf("Expected timestamp %v, got %v", t1, points[0].Timestamp)
	}

	wantQuery := `instance:node_cpu_utilisation:avg1m{instance="node1.example.com"}`
	if fake.query != wantQuery {
		t.Errorf("Expected query %q, got %q", wantQuery, fake.query)
	}
	if window := fake.rng.End.Sub(fake.rng.Start); window != time.Hour {
		t.Errorf("Expected 1h range, got %v", window)
	}
	if fake.rng.Step != 5*time.Minute {
		t.Errorf("Expected 5m step, got %v", fake.rng.Step)
	}
}

func TestPrometheusFetcher_FetchMetrics_QueryError(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	fake := &fakePromAPI{err: fmt.Errorf("server unreachable")}
	f := &PrometheusFetcher{cfg: config.MonitorConfig{}, log: log, api: fake}

	points := f.FetchMetrics(context.Background(), testNode())
	if points == nil || len(points) != 0 {
		t.Errorf("Expected empty slice on query error, got %v", points)
	}
}

func TestPrometheusFetcher_FetchMetrics_Unconfigured(t *testing.T) {
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	f := NewPrometheusFetcher(config.MonitorConfig{}, log)

	points := f.FetchMetrics(context.Background(), testNode())
	if points == nil || len(points) != 0 {
		t.Errorf("Expected empty slice with no configured backend, got %v", points)
	}
}
