// Package ratelimit implements a redis-backed token bucket shared by all API replicas.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"github.com/aimericdrk/ai-fall-guard/config"
	"github.com/aimericdrk/ai-fall-guard/internal/domain/lifecycle"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Decision is the outcome of taking one token.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter takes a token from the bucket identified by key.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Params holds dependencies for the limiter, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New returns the redis token bucket when enabled, otherwise a limiter that admits everything.
func New(params Params) (Limiter, error) {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Rate limiting disabled")

		return noopLimiter{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "redis ping failed")
			}
			params.Logger.Info("Rate limiter connected", slog.String("addr", cfg.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewTokenBucket(client, *cfg), nil
}

type noopLimiter struct{}

func (noopLimiter) Allow(context.Context, string) (Decision, error) {
	return Decision{Allowed: true}, nil
}
