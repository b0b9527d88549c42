package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api/response"
	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// MaintenanceHandlerParams holds dependencies for MaintenanceHandler, injected by Fx.
type MaintenanceHandlerParams struct {
	fx.In

	MaintenanceUC usecase.MaintenanceUsecase
	Logger        *slog.Logger
}

// MaintenanceHandler exposes the retention sweep to administrators.
type MaintenanceHandler struct {
	maintenanceUC usecase.MaintenanceUsecase
	logger        *slog.Logger
	now           func() time.Time
}

// NewMaintenanceHandler is the constructor for MaintenanceHandler.
func NewMaintenanceHandler(params MaintenanceHandlerParams) *MaintenanceHandler {
	return &MaintenanceHandler{
		maintenanceUC: params.MaintenanceUC,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// Sweep runs the retention sweep immediately.
func (h *MaintenanceHandler) Sweep(c echo.Context) error {
	ctx := c.Request().Context()

	result, err := h.maintenanceUC.Sweep(ctx, h.now())
	if err != nil {
		return errors.WithStack(err)
	}

	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Maintenance sweep triggered over HTTP",
		slog.Int64("deleted_events", result.DeletedEvents),
		slog.Int64("deleted_notifications", result.DeletedNotifications),
	)

	return response.Success(c, http.StatusOK, result)
}
