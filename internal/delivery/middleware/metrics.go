package middleware

import (
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle observes the request after the handler chain, including the error handler, has run.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			// Let echo render the error now so the recorded status is the one sent.
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.metrics.ObserveHTTP(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
