package ratelimit

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/aimericdrk/ai-fall-guard/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func setupTestBucket(t *testing.T, cfg config.RateLimitConfig) (*miniredis.Miniredis, *TokenBucket) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return mr, NewTokenBucket(client, cfg)
}

func TestTokenBucket_ExhaustsAndRefills(t *testing.T) {
	_, bucket := setupTestBucket(t, config.RateLimitConfig{
		Prefix:         "test",
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            time.Hour,
	})

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	bucket.now = func() time.Time { return now }
	ctx := context.Background()

	first, err := bucket.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, int64(1), first.Remaining)
	assert.Equal(t, 2, first.Limit)

	second, err := bucket.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, second.Allowed)
	assert.Equal(t, int64(0), second.Remaining)

	now = now.Add(20 * time.Second)
	third, err := bucket.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.False(t, third.Allowed)
	assert.Equal(t, 40*time.Second, third.RetryAfter)

	now = now.Add(40 * time.Second)
	fourth, err := bucket.Allow(ctx, "ip:10.0.0.1")
	require.NoError(t, err)
	assert.True(t, fourth.Allowed)
}

func TestTokenBucket_KeysAreIndependent(t *testing.T) {
	mr, bucket := setupTestBucket(t, config.RateLimitConfig{Prefix: "test", Capacity: 1, RefillInterval: time.Hour})
	ctx := context.Background()

	a, err := bucket.Allow(ctx, "ip:a")
	require.NoError(t, err)
	b, err := bucket.Allow(ctx, "ip:b")
	require.NoError(t, err)
	again, err := bucket.Allow(ctx, "ip:a")
	require.NoError(t, err)

	assert.True(t, a.Allowed)
	assert.True(t, b.Allowed)
	assert.False(t, again.Allowed)
	assert.True(t, mr.Exists("test:ip:a"))
	assert.Equal(t, defaultTTL, mr.TTL("test:ip:a"))
}

func TestTokenBucket_RedisDown(t *testing.T) {
	mr, bucket := setupTestBucket(t, config.RateLimitConfig{})
	mr.Close()

	_, err := bucket.Allow(context.Background(), "ip:a")
	assert.Error(t, err)
}

func TestNewTokenBucket_Defaults(t *testing.T) {
	bucket := NewTokenBucket(nil, config.RateLimitConfig{})

	assert.Equal(t, defaultPrefix, bucket.prefix)
	assert.Equal(t, defaultCapacity, bucket.capacity)
	assert.Equal(t, defaultRefillTokens, bucket.refillTokens)
	assert.Equal(t, defaultRefillInterval, bucket.refillInterval)
	assert.Equal(t, defaultTTL, bucket.ttl)
}

func TestNew_DisabledReturnsNoop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	limiter, err := New(Params{
		Lc:     lc,
		Config: &config.Config{},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)

	decision, err := limiter.Allow(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}

func TestNew_EnabledPingsOnStart(t *testing.T) {
	mr := miniredis.RunT(t)
	lc := fxtest.NewLifecycle(t)

	limiter, err := New(Params{
		Lc:     lc,
		Config: &config.Config{RateLimit: &config.RateLimitConfig{Enabled: true, Addr: mr.Addr(), Capacity: 1}},
		Logger: slog.New(slog.DiscardHandler),
	})
	require.NoError(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	decision, err := limiter.Allow(context.Background(), "ip:a")
	require.NoError(t, err)
	assert.True(t, decision.Allowed)
}
