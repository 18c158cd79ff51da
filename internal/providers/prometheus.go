package providers

import (
	"context"
	"fmt"
	"time"

	promapi "github.com/prometheus/client_golang/api"
	promv1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/cloudsentry/cloudsentry/internal/config"
	"github.com/cloudsentry/cloudsentry/internal/domain/monitoring"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
	"github.com/cloudsentry/cloudsentry/internal/pkg/metrics"
)

// Prometheus query parameters mirror the CloudWatch window: the last hour
// at five minute steps.
const (
	prometheusWindow = 60 * time.Minute
	prometheusStep   = 5 * time.Minute
)

// PrometheusFetcher retrieves node CPU utilization via a range query
// against the Prometheus HTTP API.
type PrometheusFetcher struct {
	cfg config.MonitorConfig
	log *logger.Logger

	// api is swappable for tests
	api promRangeQuerier
}

type promRangeQuerier interface {
	QueryRange(ctx context.Context, query string, r promv1.Range, opts ...promv1.Option) (model.Value, promv1.Warnings, error)
}

// NewPrometheusFetcher creates a Prometheus-backed metrics fetcher. The
// API client is constructed eagerly; an unparseable URL leaves the
// fetcher degraded and it will report empty series.
func NewPrometheusFetcher(cfg config.MonitorConfig, log *logger.Logger) *PrometheusFetcher {
	f := &PrometheusFetcher{cfg: cfg, log: log}

	if cfg.PrometheusURL != "" {
		client, err := promapi.NewClient(promapi.Config{Address: cfg.PrometheusURL})
		if err != nil {
			log.WithError(err).Warn("prometheus client init failed")
		} else {
			f.api = promv1.NewAPI(client)
		}
	}
	return f
}

// FetchMetrics runs a CPU utilization range query for the resource's
// external id. Any failure degrades to an empty slice.
func (f *PrometheusFetcher) FetchMetrics(ctx context.Context, res *resource.Resource) []monitoring.MetricPoint {
	if f.api == nil {
		f.log.Warnf("prometheus backend not configured, no metrics for %s", res.ResourceID)
		metrics.RecordMetricFetch("prometheus", false)
		return []monitoring.MetricPoint{}
	}

	query := fmt.Sprintf(`instance:node_cpu_utilisation:avg1m{instance=%q}`, res.ResourceID)
	end := time.Now().UTC()

	value, warnings, err := f.api.QueryRange(ctx, query, promv1.Range{
		Start: end.Add(-prometheusWindow),
		End:   end,
		Step:  prometheusStep,
	})
	if err != nil {
		f.log.WithError(err).Warnf("prometheus fetch failed for %s", res.ResourceID)
		metrics.RecordMetricFetch("prometheus", false)
		return []monitoring.MetricPoint{}
	}
	if len(warnings) > 0 {
		f.log.Warnf("prometheus warnings for %s: %v", res.ResourceID, warnings)
	}

	points := make([]monitoring.MetricPoint, 0)
	if matrix, ok := value.(model.Matrix); ok {
		for _, series := range matrix {
			for _, sample := range series.Values {
				cpu := float64(sample.Value)
				points = append(points, monitoring.MetricPoint{
					Timestamp: sample.Timestamp.Time().UTC(),
					CPU:       &cpu,
				})
			}
		}
	}

	metrics.RecordMetricFetch("prometheus", true)
	return points
}
