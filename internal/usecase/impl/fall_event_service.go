package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aimericdrk/ai-fall-guard/config"
	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/repository"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/metrics"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultEventRetention = 90 * 24 * time.Hour

type fallEventService struct {
	fallEventRepo  repository.FallEventRepository
	notificationUC usecase.NotificationUsecase
	metrics        *metrics.Metrics
	retention      time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// FallEventServiceParams holds dependencies for FallEventService, injected by Fx.
type FallEventServiceParams struct {
	fx.In

	FallEventRepo  repository.FallEventRepository
	NotificationUC usecase.NotificationUsecase
	Metrics        *metrics.Metrics `optional:"true"`
	Config         *config.Config
	Logger         *slog.Logger
}

// NewFallEventService is the constructor for fallEventService.
func NewFallEventService(params FallEventServiceParams) usecase.FallEventUsecase {
	retention := defaultEventRetention
	if params.Config != nil && params.Config.Maintenance != nil && params.Config.Maintenance.EventRetention > 0 {
		retention = params.Config.Maintenance.EventRetention
	}

	return &fallEventService{
		fallEventRepo:  params.FallEventRepo,
		notificationUC: params.NotificationUC,
		metrics:        params.Metrics,
		retention:      retention,
		now:            time.Now,
		logger:         params.Logger,
	}
}

func (srv *fallEventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFallEvent stores the event without checking that the user exists, then raises the notification.
func (srv *fallEventService) CreateFallEvent(ctx context.Context, input *usecase.CreateFallEventInput) (*entity.FallEvent, error) {
	event := &entity.FallEvent{
		UserID:     input.UserID,
		Confidence: input.Confidence,
		Angle:      input.Angle,
		Velocity:   input.Velocity,
		Landmarks:  input.Landmarks,
		Location:   input.Location,
		DeviceInfo: input.DeviceInfo,
		ImageURLs:  []string{},
		IsActive:   true,
	}

	if err := srv.fallEventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("userId is not a valid id")
		}
		srv.log(ctx).Error("Failed to store fall event", slog.String("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrFallEventCreationFailed, err.Error())
	}

	srv.metrics.IncFallEvent()
	srv.log(ctx).Info("Fall event recorded",
		slog.String("eventID", event.ID),
		slog.String("userID", event.UserID),
		slog.Float64("confidence", event.Confidence),
	)

	_, err := srv.notificationUC.CreateFallNotification(ctx, &usecase.CreateFallNotificationInput{
		UserID: event.UserID,
		Type:   entity.NotificationTypeFallDetected,
		Data: map[string]any{
			"fallEventId": event.ID,
			"confidence":  event.Confidence,
			"angle":       event.Angle,
			"velocity":    event.Velocity,
			"timestamp":   srv.now().UTC().Format(time.RFC3339),
		},
	})
	if err != nil {
		srv.log(ctx).Error("Failed to raise fall notification", slog.String("eventID", event.ID), slog.Any("error", err))
	}

	return event, nil
}

func (srv *fallEventService) FindAll(ctx context.Context, userID string) ([]*entity.FallEvent, error) {
	events, err := srv.fallEventRepo.FindByUser(ctx, userID, usecase.ListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fall events")
	}

	return events, nil
}

func (srv *fallEventService) FindOne(ctx context.Context, id string) (*entity.FallEvent, error) {
	event, err := srv.fallEventRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateFallEventError(err)
	}

	return event, nil
}

func (srv *fallEventService) Acknowledge(
	ctx context.Context,
	id string,
	input *usecase.AcknowledgeFallEventInput,
) (*entity.FallEvent, error) {
	event, err := srv.fallEventRepo.Acknowledge(ctx, id, entity.FallAcknowledgement{
		IsFalseAlarm:     input.IsFalseAlarm,
		FalseAlarmReason: input.FalseAlarmReason,
		AcknowledgedAt:   srv.now(),
	})
	if err != nil {
		return nil, translateFallEventError(err)
	}

	srv.log(ctx).Info("Fall event acknowledged", slog.String("eventID", id), slog.Bool("falseAlarm", input.IsFalseAlarm))

	return event, nil
}

func (srv *fallEventService) GetRecentStats(ctx context.Context, userID string, days int) (*entity.FallStats, error) {
	if days == 0 {
		days = usecase.DefaultStatsDays
	}
	if days < 1 || days > usecase.MaxStatsDays {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("days must be between 1 and %d", usecase.MaxStatsDays))
	}

	since := srv.now().AddDate(0, 0, -days)

	stats, err := srv.fallEventRepo.StatsSince(ctx, userID, since)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute fall stats")
	}

	return stats, nil
}

func (srv *fallEventService) DeleteOldEvents(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Add(-srv.retention)

	deleted, err := srv.fallEventRepo.DeleteAcknowledgedBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete old fall events")
	}

	srv.log(ctx).Info("Deleted old fall events", slog.Int64("deleted", deleted), slog.Time("cutoff", cutoff))
	srv.metrics.AddSwept("fallevents", deleted)

	return deleted, nil
}

func translateFallEventError(err error) error {
	if errors.Is(err, repository.ErrFallEventNotFound) {
		return domainerrors.ErrFallEventNotFound
	}

	return errors.Wrap(err, "fall event repository failure")
}
