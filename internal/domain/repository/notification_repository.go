// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// Create persists a new notification and fills in its ID and timestamps.
	Create(ctx context.Context, notification *entity.Notification) error

	// FindByID retrieves a notification by its unique ID.
	FindByID(ctx context.Context, id string) (*entity.Notification, error)

	// FindByUser lists a user's notifications, newest first, capped at limit.
	FindByUser(ctx context.Context, userID string, limit int) ([]*entity.Notification, error)

	// MarkSent records a successful delivery attempt.
	MarkSent(ctx context.Context, id string, sentAt time.Time) error

	// IncrementRetry records a failed delivery attempt without touching the status.
	IncrementRetry(ctx context.Context, id string) error

	// Acknowledge sets isAcknowledged, acknowledgedAt and the ACKNOWLEDGED status.
	Acknowledge(ctx context.Context, id string, at time.Time) (*entity.Notification, error)

	// MarkRead sets readAt and the READ status.
	MarkRead(ctx context.Context, id string, at time.Time) (*entity.Notification, error)

	// CountUnread counts unacknowledged notifications in an unread status.
	CountUnread(ctx context.Context, userID string) (int64, error)

	// DeleteAcknowledgedBefore removes acknowledged notifications created before cutoff.
	DeleteAcknowledgedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
