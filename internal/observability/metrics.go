package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups the service's Prometheus collectors.
type Metrics struct {
	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	errors           *prometheus.CounterVec
	resolutions      *prometheus.CounterVec
	historyLength    prometheus.Histogram
	sessionsEvicted  prometheus.Counter
	roleCacheLookups *prometheus.CounterVec
	eventFailures    *prometheus.CounterVec
}

// NewMetrics registers collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_http_errors_total",
			Help: "Error responses by route, method and error code.",
		}, []string{"route", "method", "code"}),
		resolutions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_dashboard_resolutions_total",
			Help: "Dashboard resolutions by view kind and dashboard variant.",
		}, []string{"kind", "dashboard"}),
		historyLength: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "portal_navigation_history_length",
			Help:    "History length observed after each recorded visit.",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		}),
		sessionsEvicted: factory.NewCounter(prometheus.CounterOpts{
			Name: "portal_navigation_sessions_evicted_total",
			Help: "Session histories dropped by expiry or capacity.",
		}),
		roleCacheLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_role_cache_lookups_total",
			Help: "Role cache lookups by result (hit, miss, error).",
		}, []string{"result"}),
		eventFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_event_handler_failures_total",
			Help: "Event handler failures by event type.",
		}, []string{"type"}),
	}
}

// RecordRequest counts a finished request.
func (m *Metrics) RecordRequest(route, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordError counts an error response.
func (m *Metrics) RecordError(route, method, code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(route, method, code).Inc()
}

// RecordResolution counts a dashboard decision.
func (m *Metrics) RecordResolution(kind, dashboard string) {
	if m == nil {
		return
	}
	m.resolutions.WithLabelValues(kind, dashboard).Inc()
}

// ObserveHistoryLength records a session's history size.
func (m *Metrics) ObserveHistoryLength(n int) {
	if m == nil {
		return
	}
	m.historyLength.Observe(float64(n))
}

// RecordSessionEvicted counts a dropped session history.
func (m *Metrics) RecordSessionEvicted() {
	if m == nil {
		return
	}
	m.sessionsEvicted.Inc()
}

// RecordRoleCache counts a role cache lookup outcome.
func (m *Metrics) RecordRoleCache(result string) {
	if m == nil {
		return
	}
	m.roleCacheLookups.WithLabelValues(result).Inc()
}

// RecordEventFailure counts a failed event handler.
func (m *Metrics) RecordEventFailure(eventType string) {
	if m == nil {
		return
	}
	m.eventFailures.WithLabelValues(eventType).Inc()
}
