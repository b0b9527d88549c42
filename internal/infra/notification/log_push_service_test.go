package notification

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aimericdrk/ai-fall-guard/internal/infra/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPushService_SendBatchNotification(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	svc := NewLogPushService(logger, metrics.New())

	sent, failed, invalid, err := svc.SendBatchNotification(context.Background(),
		[]string{"token-a", "token-b"}, "🚨 Fall Detected!", "body", map[string]string{"eventId": "1"})

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, 0, failed)
	assert.Empty(t, invalid)
	assert.Contains(t, buf.String(), "Push notification")
	assert.Contains(t, buf.String(), "tokens=2")
}

func TestLogPushService_NoTokens(t *testing.T) {
	svc := NewLogPushService(slog.New(slog.DiscardHandler), nil)

	sent, failed, _, err := svc.SendBatchNotification(context.Background(), nil, "t", "b", nil)

	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Zero(t, failed)
}

func TestLogPushService_CanceledContext(t *testing.T) {
	svc := NewLogPushService(slog.New(slog.DiscardHandler), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, failed, _, err := svc.SendBatchNotification(ctx, []string{"a"}, "t", "b", nil)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, failed)
}
