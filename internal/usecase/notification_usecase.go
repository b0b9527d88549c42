package usecase

import (
	"context"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
)

// CreateFallNotificationInput describes the fall a notification is raised for.
// Data carries confidence, angle and velocity as numbers.
type CreateFallNotificationInput struct {
	UserID string
	Type   entity.NotificationType
	Data   map[string]any
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// CreateFallNotification stores an emergency notification and attempts a push delivery.
	// Delivery errors are recorded on the notification, never returned.
	CreateFallNotification(ctx context.Context, input *CreateFallNotificationInput) (*entity.Notification, error)

	// FindAll lists the user's most recent notifications, newest first.
	FindAll(ctx context.Context, userID string) ([]*entity.Notification, error)

	FindOne(ctx context.Context, id string) (*entity.Notification, error)
	Acknowledge(ctx context.Context, id string) (*entity.Notification, error)
	MarkAsRead(ctx context.Context, id string) (*entity.Notification, error)

	// GetUnreadCount counts notifications that are neither acknowledged nor read.
	GetUnreadCount(ctx context.Context, userID string) (int64, error)

	// DeleteOldNotifications removes acknowledged notifications older than the retention window.
	DeleteOldNotifications(ctx context.Context, now time.Time) (int64, error)
}
