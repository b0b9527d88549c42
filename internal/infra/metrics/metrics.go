// Package metrics exposes Prometheus instrumentation for the API and the business flows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fallguard"

// Metrics owns a private registry so that tests and multiple apps in one process do not collide.
// All methods are safe to call on a nil receiver.
type Metrics struct {
	registry      *prometheus.Registry
	httpRequests  *prometheus.CounterVec
	httpDuration  *prometheus.HistogramVec
	fallEvents    prometheus.Counter
	notifications *prometheus.CounterVec
	pushTokens    *prometheus.CounterVec
	sweepDeleted  *prometheus.CounterVec
}

// New creates the registry and registers every collector.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		fallEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fall_events_total",
			Help:      "Fall events recorded.",
		}),
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification delivery attempts by outcome.",
		}, []string{"outcome"}),
		pushTokens: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "push_tokens_total",
			Help:      "Device tokens addressed by the push adapter by outcome.",
		}, []string{"outcome"}),
		sweepDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweep_deleted_total",
			Help:      "Documents removed by retention sweeps.",
		}, []string{"collection"}),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.fallEvents,
		m.notifications,
		m.pushTokens,
		m.sweepDeleted,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}

	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// IncFallEvent records a persisted fall event.
func (m *Metrics) IncFallEvent() {
	if m == nil {
		return
	}

	m.fallEvents.Inc()
}

// ObserveNotification records the outcome of a delivery attempt.
func (m *Metrics) ObserveNotification(sent bool) {
	if m == nil {
		return
	}

	outcome := "sent"
	if !sent {
		outcome = "failed"
	}
	m.notifications.WithLabelValues(outcome).Inc()
}

// ObservePush records per-token results reported by the push adapter.
func (m *Metrics) ObservePush(delivered, failed int) {
	if m == nil {
		return
	}

	m.pushTokens.WithLabelValues("delivered").Add(float64(delivered))
	m.pushTokens.WithLabelValues("failed").Add(float64(failed))
}

// AddSwept records documents removed from a collection by a retention sweep.
func (m *Metrics) AddSwept(collection string, deleted int64) {
	if m == nil || deleted <= 0 {
		return
	}

	m.sweepDeleted.WithLabelValues(collection).Add(float64(deleted))
}
