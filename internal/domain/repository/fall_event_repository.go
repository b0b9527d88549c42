package repository

import (
	"context"
	"errors"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"
)

// ErrFallEventNotFound is returned when a fall event is not found.
var ErrFallEventNotFound = errors.New("fall event not found")

// FallEventRepository defines persistence for fall events.
type FallEventRepository interface {
	// Create persists a new event and fills in its ID and timestamps.
	Create(ctx context.Context, event *entity.FallEvent) error

	// FindByID retrieves a single event.
	FindByID(ctx context.Context, id string) (*entity.FallEvent, error)

	// FindByUser lists a user's events, newest first, capped at limit.
	FindByUser(ctx context.Context, userID string, limit int) ([]*entity.FallEvent, error)

	// Acknowledge sets all acknowledgment fields in a single update and returns the result.
	Acknowledge(ctx context.Context, id string, ack entity.FallAcknowledgement) (*entity.FallEvent, error)

	// StatsSince aggregates a user's events created at or after since.
	// It returns the zero FallStats when nothing matches.
	StatsSince(ctx context.Context, userID string, since time.Time) (*entity.FallStats, error)

	// DeleteAcknowledgedBefore removes acknowledged events created before cutoff.
	DeleteAcknowledgedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
