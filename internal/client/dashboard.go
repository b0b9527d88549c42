package client

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultStatsDays is the window summarized by the dashboard.
const DefaultStatsDays = 30

// API is the part of the REST client the dashboard reads from.
type API interface {
	Stats(ctx context.Context, days int) (*entity.FallStats, error)
	UnreadCount(ctx context.Context) (int64, error)
	ListFallEvents(ctx context.Context) ([]*entity.FallEvent, error)
	ListNotifications(ctx context.Context) ([]*entity.Notification, error)
	AcknowledgeFallEvent(ctx context.Context, id string, isFalseAlarm bool, reason string) (*entity.FallEvent, error)
	AcknowledgeNotification(ctx context.Context, id string) (*entity.Notification, error)
	MarkNotificationRead(ctx context.Context, id string) (*entity.Notification, error)
}

// Snapshot is the dashboard state as of the last load.
type Snapshot struct {
	StatsDays     int
	Stats         *entity.FallStats
	UnreadCount   int64
	Events        []*entity.FallEvent
	Notifications []*entity.Notification
	LoadedAt      time.Time
}

// Dashboard keeps a local snapshot and patches it after each successful mutation.
type Dashboard struct {
	api       API
	statsDays int
	now       func() time.Time

	mu       sync.RWMutex
	snapshot Snapshot
}

// NewDashboard creates a dashboard summarizing the last statsDays days; zero means DefaultStatsDays.
func NewDashboard(api API, statsDays int) *Dashboard {
	if statsDays <= 0 {
		statsDays = DefaultStatsDays
	}

	return &Dashboard{
		api:       api,
		statsDays: statsDays,
		now:       time.Now,
	}
}

// Load fetches every panel concurrently. The snapshot is replaced only when all of them succeed.
func (d *Dashboard) Load(ctx context.Context) (Snapshot, error) {
	var next Snapshot
	next.StatsDays = d.statsDays

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := d.api.Stats(gctx, d.statsDays)
		next.Stats = stats

		return errors.Wrap(err, "load stats")
	})
	g.Go(func() error {
		count, err := d.api.UnreadCount(gctx)
		next.UnreadCount = count

		return errors.Wrap(err, "load unread count")
	})
	g.Go(func() error {
		events, err := d.api.ListFallEvents(gctx)
		next.Events = events

		return errors.Wrap(err, "load fall events")
	})
	g.Go(func() error {
		notifications, err := d.api.ListNotifications(gctx)
		next.Notifications = notifications

		return errors.Wrap(err, "load notifications")
	})
	if err := g.Wait(); err != nil {
		return d.Snapshot(), err
	}
	next.LoadedAt = d.now()

	d.mu.Lock()
	d.snapshot = next
	d.mu.Unlock()

	return d.Snapshot(), nil
}

// Snapshot returns a copy of the current state.
func (d *Dashboard) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	s := d.snapshot
	s.Events = slices.Clone(d.snapshot.Events)
	s.Notifications = slices.Clone(d.snapshot.Notifications)

	return s
}

// AcknowledgeEvent records the verdict and replaces the event in the snapshot.
func (d *Dashboard) AcknowledgeEvent(ctx context.Context, id string, isFalseAlarm bool, reason string) (*entity.FallEvent, error) {
	event, err := d.api.AcknowledgeFallEvent(ctx, id, isFalseAlarm, reason)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if i := slices.IndexFunc(d.snapshot.Events, func(e *entity.FallEvent) bool { return e.ID == event.ID }); i >= 0 {
		d.snapshot.Events[i] = event
	}

	return event, nil
}

// AcknowledgeNotification acknowledges and replaces the notification, lowering the unread count.
func (d *Dashboard) AcknowledgeNotification(ctx context.Context, id string) (*entity.Notification, error) {
	notification, err := d.api.AcknowledgeNotification(ctx, id)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.replaceNotification(notification)
	if d.snapshot.UnreadCount > 0 {
		d.snapshot.UnreadCount--
	}

	return notification, nil
}

// MarkRead marks the notification read and replaces it. The unread count drops only
// if the local copy was unread.
func (d *Dashboard) MarkRead(ctx context.Context, id string) (*entity.Notification, error) {
	notification, err := d.api.MarkNotificationRead(ctx, id)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	previous := d.replaceNotification(notification)
	if previous != nil && previous.IsUnread() && !notification.IsUnread() && d.snapshot.UnreadCount > 0 {
		d.snapshot.UnreadCount--
	}

	return notification, nil
}

// replaceNotification swaps in n and returns the copy it replaced. Callers hold the lock.
func (d *Dashboard) replaceNotification(n *entity.Notification) *entity.Notification {
	i := slices.IndexFunc(d.snapshot.Notifications, func(x *entity.Notification) bool { return x.ID == n.ID })
	if i < 0 {
		return nil
	}
	previous := d.snapshot.Notifications[i]
	d.snapshot.Notifications[i] = n

	return previous
}
