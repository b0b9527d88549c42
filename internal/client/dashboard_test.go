package client

import (
	"context"
	"testing"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	stats         *entity.FallStats
	unread        int64
	events        []*entity.FallEvent
	notifications []*entity.Notification
	failStats     error
	statsDays     int
}

func (f *fakeAPI) Stats(_ context.Context, days int) (*entity.FallStats, error) {
	f.statsDays = days

	return f.stats, f.failStats
}

func (f *fakeAPI) UnreadCount(context.Context) (int64, error) {
	return f.unread, nil
}

func (f *fakeAPI) ListFallEvents(context.Context) ([]*entity.FallEvent, error) {
	return f.events, nil
}

func (f *fakeAPI) ListNotifications(context.Context) ([]*entity.Notification, error) {
	return f.notifications, nil
}

func (f *fakeAPI) AcknowledgeFallEvent(_ context.Context, id string, isFalseAlarm bool, reason string) (*entity.FallEvent, error) {
	return &entity.FallEvent{ID: id, IsAcknowledged: true, IsFalseAlarm: isFalseAlarm, FalseAlarmReason: reason}, nil
}

func (f *fakeAPI) AcknowledgeNotification(_ context.Context, id string) (*entity.Notification, error) {
	return &entity.Notification{ID: id, IsAcknowledged: true, Status: entity.NotificationStatusAcknowledged}, nil
}

func (f *fakeAPI) MarkNotificationRead(_ context.Context, id string) (*entity.Notification, error) {
	if id == "missing" {
		return nil, &APIError{StatusCode: 404, Code: "NOTIFICATION_NOT_FOUND"}
	}

	return &entity.Notification{ID: id, Status: entity.NotificationStatusRead}, nil
}

func newLoadedDashboard(t *testing.T) (*Dashboard, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{
		stats:  &entity.FallStats{TotalFalls: 2},
		unread: 2,
		events: []*entity.FallEvent{{ID: "e2"}, {ID: "e1"}},
		notifications: []*entity.Notification{
			{ID: "n2", Status: entity.NotificationStatusSent},
			{ID: "n1", Status: entity.NotificationStatusPending},
		},
	}
	d := NewDashboard(api, 0)
	d.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	_, err := d.Load(context.Background())
	require.NoError(t, err)

	return d, api
}

func TestDashboard_Load(t *testing.T) {
	d, api := newLoadedDashboard(t)

	snap := d.Snapshot()

	assert.Equal(t, DefaultStatsDays, api.statsDays)
	assert.Equal(t, 2, snap.Stats.TotalFalls)
	assert.Equal(t, int64(2), snap.UnreadCount)
	assert.Len(t, snap.Events, 2)
	assert.Len(t, snap.Notifications, 2)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), snap.LoadedAt)
}

func TestDashboard_Load_FailureKeepsPreviousSnapshot(t *testing.T) {
	d, api := newLoadedDashboard(t)
	api.failStats = errors.New("connection refused")
	api.unread = 9

	snap, err := d.Load(context.Background())

	require.Error(t, err)
	assert.Equal(t, int64(2), snap.UnreadCount)
}

func TestDashboard_AcknowledgeEvent_ReplacesRecord(t *testing.T) {
	d, _ := newLoadedDashboard(t)
	before := d.Snapshot()

	event, err := d.AcknowledgeEvent(context.Background(), "e1", true, "sat down")

	require.NoError(t, err)
	assert.True(t, event.IsAcknowledged)

	after := d.Snapshot()
	assert.Same(t, event, after.Events[1])
	assert.Equal(t, "e2", after.Events[0].ID)
	assert.False(t, before.Events[1].IsAcknowledged)
}

func TestDashboard_AcknowledgeNotification_LowersUnread(t *testing.T) {
	d, _ := newLoadedDashboard(t)

	_, err := d.AcknowledgeNotification(context.Background(), "n2")

	require.NoError(t, err)
	snap := d.Snapshot()
	assert.Equal(t, int64(1), snap.UnreadCount)
	assert.True(t, snap.Notifications[0].IsAcknowledged)
}

func TestDashboard_MarkRead(t *testing.T) {
	d, _ := newLoadedDashboard(t)

	_, err := d.MarkRead(context.Background(), "n1")
	require.NoError(t, err)
	_, err = d.MarkRead(context.Background(), "n1")
	require.NoError(t, err)

	snap := d.Snapshot()
	assert.Equal(t, int64(1), snap.UnreadCount)
	assert.Equal(t, entity.NotificationStatusRead, snap.Notifications[1].Status)
}

func TestDashboard_MarkRead_ErrorLeavesSnapshot(t *testing.T) {
	d, _ := newLoadedDashboard(t)

	_, err := d.MarkRead(context.Background(), "missing")

	require.Error(t, err)
	assert.Equal(t, int64(2), d.Snapshot().UnreadCount)
}
