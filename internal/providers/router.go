package providers

import (
	"context"
	"strings"

	"github.com/cloudsentry/cloudsentry/internal/domain/monitoring"
	"github.com/cloudsentry/cloudsentry/internal/domain/resource"
	"github.com/cloudsentry/cloudsentry/internal/pkg/logger"
)

// Router dispatches metric fetches to the backend registered for the
// resource's cloud provider label. Providers compare case-insensitively.
type Router struct {
	fetchers map[string]monitoring.Fetcher
	log      *logger.Logger
}

// NewRouter creates a provider-dispatching fetcher
func NewRouter(log *logger.Logger) *Router {
	return &Router{
		fetchers: make(map[string]monitoring.Fetcher),
		log:      log,
	}
}

// Register binds a fetcher to a cloud provider label
func (r *Router) Register(provider string, f monitoring.Fetcher) {
	r.fetchers[strings.ToLower(provider)] = f
}

// FetchMetrics routes to the registered backend. A resource with no
// registered backend yields an empty slice, not an error.
func (r *Router) FetchMetrics(ctx context.Context, res *resource.Resource) []monitoring.MetricPoint {
	f, ok := r.fetchers[strings.ToLower(res.CloudProvider)]
	if !ok {
		r.log.Warnf("no monitoring backend for provider %q", res.CloudProvider)
		return []monitoring.MetricPoint{}
	}
	return f.FetchMetrics(ctx, res)
}
