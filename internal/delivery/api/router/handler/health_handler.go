package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api/response"
	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const healthCheckTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Database Pinger
	Logger   *slog.Logger
}

// HealthHandler answers liveness probes.
type HealthHandler struct {
	database Pinger
	logger   *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		database: params.Database,
		logger:   params.Logger,
	}
}

// HealthCheck reports ok when the database answers a ping.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	if err := h.database.Ping(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Health check failed", slog.Any("error", err))

		return response.Success(c, http.StatusServiceUnavailable, map[string]string{
			"status":   "unavailable",
			"database": "down",
		})
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"status":   "ok",
		"database": "up",
	})
}
