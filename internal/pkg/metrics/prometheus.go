package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTP metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cloudsentry",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path", "status"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "cloudsentry",
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		},
	)

	// Alerting metrics
	alertsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "alerting",
			Name:      "alerts_generated_total",
			Help:      "Total number of alerts generated",
		},
		[]string{"severity"},
	)

	alertsResolvedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "alerting",
			Name:      "alerts_resolved_total",
			Help:      "Total number of alerts resolved",
		},
	)

	notificationDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "alerting",
			Name:      "notification_deliveries_total",
			Help:      "Notification delivery attempts by channel and outcome",
		},
		[]string{"channel", "outcome"},
	)

	// Onboarding metrics
	onboardingResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "onboarding",
			Name:      "results_total",
			Help:      "Onboarding results by outcome",
		},
		[]string{"outcome"},
	)

	// Monitoring metrics
	metricFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudsentry",
			Subsystem: "monitoring",
			Name:      "metric_fetches_total",
			Help:      "Metric fetches by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)
)

// RecordAlertGenerated increments the generated alert counter
func RecordAlertGenerated(severity string) {
	alertsGeneratedTotal.WithLabelValues(severity).Inc()
}

// RecordAlertResolved increments the resolved alert counter
func RecordAlertResolved() {
	alertsResolvedTotal.Inc()
}

// RecordDelivery records a notification delivery attempt
func RecordDelivery(channel string, ok bool) {
	outcome := "sent"
	if !ok {
		outcome = "failed"
	}
	notificationDeliveries.WithLabelValues(channel, outcome).Inc()
}

// RecordOnboarding records an onboarding outcome
func RecordOnboarding(outcome string) {
	onboardingResults.WithLabelValues(outcome).Inc()
}

// RecordMetricFetch records a backend metric fetch
func RecordMetricFetch(provider string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	metricFetchesTotal.WithLabelValues(provider, outcome).Inc()
}

// Handler returns the Prometheus exposition handler
func Handler() http.Handler {
	return promhttp.Handler()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// Middleware instruments HTTP handlers with request metrics
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		status := strconv.Itoa(rec.status)
		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
	})
}
