package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/aimericdrk/ai-fall-guard/config"
	"github.com/aimericdrk/ai-fall-guard/internal/delivery"
	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api"
	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api/middleware"
	"github.com/aimericdrk/ai-fall-guard/internal/delivery/api/router/handler"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/auth"
	logs "github.com/aimericdrk/ai-fall-guard/internal/infra/log"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/metrics"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/notification"
	mongostore "github.com/aimericdrk/ai-fall-guard/internal/infra/persistence/mongo"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/ratelimit"
	"github.com/aimericdrk/ai-fall-guard/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newMetrics,
		mongostore.New,
		fx.Annotate(
			mongostore.NewHealthChecker,
			fx.As(new(handler.Pinger)),
		),
		ratelimit.New,
	)
}

// newMetrics returns nil when metrics are disabled; every consumer treats nil as a no-op.
func newMetrics(cfg *config.Config) *metrics.Metrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return nil
	}

	return metrics.New()
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			mongostore.NewUserRepository,
			mongostore.NewFallEventRepository,
			mongostore.NewNotificationRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			notification.NewLogPushService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewUserService,
			impl.NewNotificationService,
			impl.NewFallEventService,
			impl.NewMaintenanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewRateLimitMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewFallEventHandler,
			handler.NewNotificationHandler,
			handler.NewMaintenanceHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
