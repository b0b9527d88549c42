// Package notification provides push delivery adapters.
package notification

import (
	"context"
	"log/slog"

	"github.com/aimericdrk/ai-fall-guard/internal/domain/service"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/metrics"
)

// logPushService stands in for a real push provider. It records the message in the log
// and reports every token as delivered.
type logPushService struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewLogPushService creates the logging push adapter.
func NewLogPushService(logger *slog.Logger, m *metrics.Metrics) service.NotificationService {
	return &logPushService{
		logger:  logger,
		metrics: m,
	}
}

// SendBatchNotification logs the notification once per call. An empty token list is not an error:
// the stored notification still counts as sent.
func (s *logPushService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	if err := ctx.Err(); err != nil {
		return 0, len(tokens), nil, err
	}

	s.logger.InfoContext(ctx, "Push notification",
		slog.String("title", title),
		slog.String("body", body),
		slog.Int("tokens", len(tokens)),
		slog.Any("data", data),
	)
	s.metrics.ObservePush(len(tokens), 0)

	return len(tokens), 0, nil, nil
}
