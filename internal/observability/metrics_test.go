package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.RecordRequest("/dashboard", "GET", 200, 10*time.Millisecond)
	m.RecordRequest("/dashboard", "GET", 200, 20*time.Millisecond)
	m.RecordError("/navigation/visits", "POST", "VALIDATION_FAILED")
	m.RecordResolution("dashboard", "agent")
	m.RecordRoleCache("hit")
	m.RecordSessionEvicted()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("/dashboard", "GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues("/navigation/visits", "POST", "VALIDATION_FAILED")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.resolutions.WithLabelValues("dashboard", "agent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.roleCacheLookups.WithLabelValues("hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsEvicted))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordRequest("/", "GET", 200, time.Millisecond)
		m.RecordError("/", "GET", "X")
		m.RecordResolution("loading", "none")
		m.ObserveHistoryLength(3)
		m.RecordSessionEvicted()
		m.RecordRoleCache("miss")
		m.RecordEventFailure("location_changed")
	})
}
