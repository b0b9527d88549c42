package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/aimericdrk/ai-fall-guard/internal/client"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSnapshot(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	snapshot := client.Snapshot{
		StatsDays:   30,
		Stats:       &entity.FallStats{TotalFalls: 3, AcknowledgedFalls: 1, FalseAlarms: 1, AvgConfidence: 0.876},
		UnreadCount: 1,
		Events: []*entity.FallEvent{
			{ID: "evt-2", Confidence: 0.9, Angle: 72.6, Velocity: 1.234, CreatedAt: now.Add(-90 * time.Minute)},
			{ID: "evt-1", Confidence: 0.5, IsAcknowledged: true, IsFalseAlarm: true, CreatedAt: now.Add(-50 * time.Hour)},
			{ID: "evt-0", CreatedAt: now.Add(-100 * time.Hour)},
		},
		Notifications: []*entity.Notification{
			{ID: "n-1", Title: "🚨 Fall Detected!", Status: entity.NotificationStatusSent, CreatedAt: now.Add(-45 * time.Second)},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, renderSnapshot(&buf, snapshot, 2, now))
	out := buf.String()

	assert.Contains(t, out, "STATS (last 30 days)")
	assert.Contains(t, out, "88%")
	assert.Contains(t, out, "1h30m ago")
	assert.Contains(t, out, "73°")
	assert.Contains(t, out, "1.23 m/s")
	assert.Contains(t, out, "false alarm")
	assert.Contains(t, out, "2d2h ago")
	assert.NotContains(t, out, "evt-0")
	assert.Contains(t, out, "SENT *")
	assert.Contains(t, out, "45s ago")
}

func TestRenderSnapshot_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderSnapshot(&buf, client.Snapshot{StatsDays: 7}, 5, time.Now()))

	assert.Contains(t, buf.String(), "No fall events")
	assert.Contains(t, buf.String(), "No notifications")
}

func TestAckEventRejectsReasonWithoutFalseAlarm(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{"ack-event", "evt-1", "--reason", "sat down", "--token-file", t.TempDir() + "/token"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--false-alarm")
}
