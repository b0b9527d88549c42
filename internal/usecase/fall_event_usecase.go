package usecase

import (
	"context"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
)

const (
	// ListLimit caps the number of records returned by the list operations.
	ListLimit = 100

	// DefaultStatsDays is the stats window used when the caller does not pick one.
	DefaultStatsDays = 30
	// MaxStatsDays is the widest stats window accepted.
	MaxStatsDays = 365
)

// CreateFallEventInput is a fall reported by a sensing client.
type CreateFallEventInput struct {
	UserID     string
	Confidence float64
	Angle      float64
	Velocity   float64
	Landmarks  map[string]any
	Location   *entity.GeoLocation
	DeviceInfo *entity.DeviceInfo
}

// AcknowledgeFallEventInput is the reviewer's verdict.
type AcknowledgeFallEventInput struct {
	IsFalseAlarm     bool
	FalseAlarmReason string
}

// FallEventUsecase defines the operations on fall events.
type FallEventUsecase interface {
	// CreateFallEvent stores the event and raises a FALL_DETECTED notification for its user.
	// A failure to raise the notification does not fail the call.
	CreateFallEvent(ctx context.Context, input *CreateFallEventInput) (*entity.FallEvent, error)

	// FindAll lists the user's most recent events, newest first.
	FindAll(ctx context.Context, userID string) ([]*entity.FallEvent, error)

	FindOne(ctx context.Context, id string) (*entity.FallEvent, error)

	// Acknowledge records the verdict. Acknowledging again overwrites the previous verdict.
	Acknowledge(ctx context.Context, id string, input *AcknowledgeFallEventInput) (*entity.FallEvent, error)

	// GetRecentStats summarizes the user's events of the last days. Zero days means DefaultStatsDays.
	GetRecentStats(ctx context.Context, userID string, days int) (*entity.FallStats, error)

	// DeleteOldEvents removes acknowledged events older than the retention window.
	DeleteOldEvents(ctx context.Context, now time.Time) (int64, error)
}
