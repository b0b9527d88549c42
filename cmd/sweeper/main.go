// Command sweeper runs the retention sweep once and exits. It is meant to be scheduled externally.
package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/aimericdrk/ai-fall-guard/config"
	logs "github.com/aimericdrk/ai-fall-guard/internal/infra/log"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/metrics"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/notification"
	mongostore "github.com/aimericdrk/ai-fall-guard/internal/infra/persistence/mongo"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase/impl"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

const sweepTimeout = 5 * time.Minute

type sweepParams struct {
	fx.In

	Lc            fx.Lifecycle
	Shutdowner    fx.Shutdowner
	MaintenanceUC usecase.MaintenanceUsecase
	Logger        *slog.Logger
}

func main() {
	fx.New(
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Provide(
			config.New,
			logs.New,
			func() *metrics.Metrics { return nil },
			mongostore.New,
			mongostore.NewUserRepository,
			mongostore.NewFallEventRepository,
			mongostore.NewNotificationRepository,
			notification.NewLogPushService,
			impl.NewNotificationService,
			impl.NewFallEventService,
			impl.NewMaintenanceService,
		),
		fx.Invoke(runSweep),
	).Run()
}

// runSweep starts the sweep once every OnStart hook (database ping, indexes) has run and
// shuts the application down when it finishes. A failed sweep exits with status 1.
func runSweep(params sweepParams) {
	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
				defer cancel()

				start := time.Now()
				result, err := params.MaintenanceUC.Sweep(ctx, start)
				if err != nil {
					params.Logger.Error("Sweep failed", slog.Any("error", err))
					_ = params.Shutdowner.Shutdown(fx.ExitCode(1))

					return
				}

				params.Logger.Info("Sweep finished",
					slog.Int64("deleted_events", result.DeletedEvents),
					slog.Int64("deleted_notifications", result.DeletedNotifications),
					slog.Duration("elapsed", time.Since(start)),
				)
				_ = params.Shutdowner.Shutdown()
			}()

			return nil
		},
	})
}
