package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.ObserveHTTP(http.MethodGet, "/api/v1/notifications", http.StatusOK, 20*time.Millisecond)
	m.ObserveHTTP(http.MethodGet, "/api/v1/notifications", http.StatusOK, 30*time.Millisecond)
	m.IncFallEvent()
	m.ObserveNotification(true)
	m.ObserveNotification(false)
	m.ObservePush(3, 1)
	m.AddSwept("fall_events", 4)
	m.AddSwept("notifications", 0)

	assert.InDelta(t, 2, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/v1/notifications", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.fallEvents), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.notifications.WithLabelValues("sent")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.notifications.WithLabelValues("failed")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.pushTokens.WithLabelValues("delivered")), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(m.sweepDeleted.WithLabelValues("fall_events")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.sweepDeleted.WithLabelValues("notifications")), 0)
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP(http.MethodGet, "/", http.StatusOK, time.Millisecond)
		m.IncFallEvent()
		m.ObserveNotification(true)
		m.ObservePush(1, 0)
		m.AddSwept("fall_events", 1)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetrics_HandlerExposesRegistry(t *testing.T) {
	m := New()
	m.IncFallEvent()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "fallguard_fall_events_total 1")
}
