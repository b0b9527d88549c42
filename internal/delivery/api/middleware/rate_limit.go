package middleware

import (
	"log/slog"
	"math"
	"strconv"

	deliverycontext "github.com/aimericdrk/ai-fall-guard/internal/delivery/context"
	domainerrors "github.com/aimericdrk/ai-fall-guard/internal/domain/errors"
	"github.com/aimericdrk/ai-fall-guard/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
)

const (
	HeaderRateLimitLimit     = "X-RateLimit-Limit"
	HeaderRateLimitRemaining = "X-RateLimit-Remaining"
	HeaderRetryAfter         = "Retry-After"
)

// RateLimitMiddleware throttles requests per client IP.
type RateLimitMiddleware struct {
	limiter ratelimit.Limiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limiting middleware
func NewRateLimitMiddleware(limiter ratelimit.Limiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit takes one token from the bucket of the scope and client IP. When the limiter
// itself fails the request is let through.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			decision, err := m.limiter.Allow(ctx, scope+":"+c.RealIP())
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable, allowing request",
					slog.String("scope", scope),
					slog.Any("error", err),
				)

				return next(c)
			}

			header := c.Response().Header()
			if decision.Limit > 0 {
				header.Set(HeaderRateLimitLimit, strconv.Itoa(decision.Limit))
				header.Set(HeaderRateLimitRemaining, strconv.FormatInt(decision.Remaining, 10))
			}

			if !decision.Allowed {
				seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				header.Set(HeaderRetryAfter, strconv.Itoa(seconds))

				return domainerrors.ErrRateLimited
			}

			return next(c)
		}
	}
}
