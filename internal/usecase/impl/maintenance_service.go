package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	"github.com/aimericdrk/ai-fall-guard/internal/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"go.uber.org/fx"
)

type maintenanceService struct {
	fallEventUC    usecase.FallEventUsecase
	notificationUC usecase.NotificationUsecase
	logger         *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	FallEventUC    usecase.FallEventUsecase
	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		fallEventUC:    params.FallEventUC,
		notificationUC: params.NotificationUC,
		logger:         params.Logger,
	}
}

// Sweep runs both retention sweeps. The notification sweep still runs when the event sweep fails.
func (srv *maintenanceService) Sweep(ctx context.Context, now time.Time) (*entity.SweepResult, error) {
	log := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	result := &entity.SweepResult{}

	deletedEvents, eventErr := srv.fallEventUC.DeleteOldEvents(ctx, now)
	if eventErr != nil {
		log.Error("Fall event sweep failed", slog.Any("error", eventErr))
	}
	result.DeletedEvents = deletedEvents

	deletedNotifications, notificationErr := srv.notificationUC.DeleteOldNotifications(ctx, now)
	if notificationErr != nil {
		log.Error("Notification sweep failed", slog.Any("error", notificationErr))
	}
	result.DeletedNotifications = deletedNotifications

	if eventErr != nil || notificationErr != nil {
		return result, errors.WithStack(errors.Join(eventErr, notificationErr))
	}

	log.Info("Maintenance sweep completed",
		slog.Int64("deletedEvents", result.DeletedEvents),
		slog.Int64("deletedNotifications", result.DeletedNotifications),
	)

	return result, nil
}
