package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/aimericdrk/ai-fall-guard/config"
	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/repository"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/service"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/metrics"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallNotificationTitle = "🚨 Fall Detected!"

	defaultNotificationRetention = 30 * 24 * time.Hour
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	pushSvc          service.NotificationService
	metrics          *metrics.Metrics
	retention        time.Duration
	now              func() time.Time
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	PushSvc          service.NotificationService
	Metrics          *metrics.Metrics `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	retention := defaultNotificationRetention
	if params.Config != nil && params.Config.Maintenance != nil && params.Config.Maintenance.NotificationRetention > 0 {
		retention = params.Config.Maintenance.NotificationRetention
	}

	return &notificationService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		pushSvc:          params.PushSvc,
		metrics:          params.Metrics,
		retention:        retention,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateFallNotification stores the notification, then attempts delivery.
func (srv *notificationService) CreateFallNotification(
	ctx context.Context,
	input *usecase.CreateFallNotificationInput,
) (*entity.Notification, error) {
	notificationType := input.Type
	if notificationType == "" {
		notificationType = entity.NotificationTypeFallDetected
	}
	if !notificationType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("unknown notification type %q", notificationType))
	}

	data := input.Data
	if data == nil {
		data = map[string]any{}
	}

	notification := &entity.Notification{
		UserID:       input.UserID,
		Type:         notificationType,
		Title:        fallNotificationTitle,
		Message:      fallMessage(data),
		Data:         data,
		Status:       entity.NotificationStatusPending,
		IsEmergency:  true,
		DeviceTokens: srv.deviceTokens(ctx, input.UserID),
	}

	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		srv.log(ctx).Error("Failed to create notification", slog.String("userID", input.UserID), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("userId is not a valid id")
		}

		return nil, errors.Wrap(domainerrors.ErrNotificationCreationFailed, err.Error())
	}

	srv.sendPushNotification(ctx, notification)

	return notification, nil
}

// deviceTokens copies the user's push tokens. A missing user only means nobody to push to.
func (srv *notificationService) deviceTokens(ctx context.Context, userID string) []string {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		srv.log(ctx).Debug("No device tokens for notification", slog.String("userID", userID), slog.Any("error", err))

		return []string{}
	}

	return append([]string{}, user.DeviceTokens...)
}

// sendPushNotification moves the notification to SENT, or bumps its retry count on failure.
// Errors are logged only.
func (srv *notificationService) sendPushNotification(ctx context.Context, notification *entity.Notification) {
	payload := pushPayload(notification)

	_, _, invalidTokens, err := srv.pushSvc.SendBatchNotification(ctx, notification.DeviceTokens, notification.Title, notification.Message, payload)
	if len(invalidTokens) > 0 {
		srv.log(ctx).Warn("Push provider rejected device tokens",
			slog.String("notificationID", notification.ID),
			slog.Int("count", len(invalidTokens)),
		)
	}

	if err != nil {
		srv.log(ctx).Error("Push delivery failed", slog.String("notificationID", notification.ID), slog.Any("error", err))
		srv.metrics.ObserveNotification(false)

		if retryErr := srv.notificationRepo.IncrementRetry(ctx, notification.ID); retryErr != nil {
			srv.log(ctx).Error("Failed to record push retry", slog.String("notificationID", notification.ID), slog.Any("error", retryErr))

			return
		}
		notification.RetryCount++

		return
	}

	sentAt := srv.now().UTC()
	if err := srv.notificationRepo.MarkSent(ctx, notification.ID, sentAt); err != nil {
		srv.log(ctx).Error("Failed to mark notification sent", slog.String("notificationID", notification.ID), slog.Any("error", err))

		return
	}
	srv.metrics.ObserveNotification(true)

	notification.Status = entity.NotificationStatusSent
	notification.SentAt = &sentAt
}

func (srv *notificationService) FindAll(ctx context.Context, userID string) ([]*entity.Notification, error) {
	notifications, err := srv.notificationRepo.FindByUser(ctx, userID, usecase.ListLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

func (srv *notificationService) FindOne(ctx context.Context, id string) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateNotificationError(err)
	}

	return notification, nil
}

func (srv *notificationService) Acknowledge(ctx context.Context, id string) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.Acknowledge(ctx, id, srv.now())
	if err != nil {
		return nil, translateNotificationError(err)
	}

	return notification, nil
}

func (srv *notificationService) MarkAsRead(ctx context.Context, id string) (*entity.Notification, error) {
	notification, err := srv.notificationRepo.MarkRead(ctx, id, srv.now())
	if err != nil {
		return nil, translateNotificationError(err)
	}

	return notification, nil
}

func (srv *notificationService) GetUnreadCount(ctx context.Context, userID string) (int64, error) {
	count, err := srv.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

func (srv *notificationService) DeleteOldNotifications(ctx context.Context, now time.Time) (int64, error) {
	cutoff := now.Add(-srv.retention)

	deleted, err := srv.notificationRepo.DeleteAcknowledgedBefore(ctx, cutoff)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete old notifications")
	}

	srv.log(ctx).Info("Deleted old notifications", slog.Int64("deleted", deleted), slog.Time("cutoff", cutoff))
	srv.metrics.AddSwept("notifications", deleted)

	return deleted, nil
}

func translateNotificationError(err error) error {
	if errors.Is(err, repository.ErrNotificationNotFound) {
		return domainerrors.ErrNotificationNotFound
	}

	return errors.Wrap(err, "notification repository failure")
}

// fallMessage renders the human readable alert from the fall measurements in data.
func fallMessage(data map[string]any) string {
	confidence := number(data["confidence"])
	angle := number(data["angle"])
	velocity := number(data["velocity"])

	return fmt.Sprintf(
		"A fall has been detected with %d%% confidence. Body angle: %d°, Velocity: %.2f m/s",
		int(roundHalfUp(confidence*100)),
		int(roundHalfUp(angle)),
		velocity,
	)
}

// roundHalfUp rounds ties toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// number reads a JSON or BSON decoded numeric value. Anything else reads as zero.
func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}

func pushPayload(notification *entity.Notification) map[string]string {
	payload := make(map[string]string, len(notification.Data)+2)
	for k, v := range notification.Data {
		payload[k] = fmt.Sprint(v)
	}
	payload["notificationId"] = notification.ID
	payload["type"] = string(notification.Type)

	return payload
}
