package impl

import (
	"io"
	"log/slog"
	"time"

	"github.com/aimericdrk/ai-fall-guard/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Maintenance: &config.MaintenanceConfig{
			EventRetention:        90 * 24 * time.Hour,
			NotificationRetention: 30 * 24 * time.Hour,
		},
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
