package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/aimericdrk/ai-fall-guard/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const (
	defaultCapacity       = 10
	defaultRefillTokens   = 1
	defaultRefillInterval = 6 * time.Second
	defaultTTL            = 10 * time.Minute
	defaultPrefix         = "fallguard:rl"
)

// The bucket state lives in one hash per key. Refill is computed from the elapsed whole intervals
// so that concurrent replicas agree without a background refiller.
var tokenBucketScript = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local refill_tokens = tonumber(ARGV[3])
local interval_ms = tonumber(ARGV[4])
local ttl_seconds = tonumber(ARGV[5])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

if interval_ms > 0 and refill_tokens > 0 then
	local elapsed = math.max(0, now_ms - last_refill)
	local intervals = math.floor(elapsed / interval_ms)
	if intervals > 0 then
		tokens = math.min(capacity, tokens + (intervals * refill_tokens))
		last_refill = last_refill + (intervals * interval_ms)
	end
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = interval_ms - (now_ms - last_refill)
	if retry_after_ms < 0 then retry_after_ms = 0 end
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

// TokenBucket is a Limiter evaluated atomically inside redis.
type TokenBucket struct {
	client         redis.Scripter
	prefix         string
	capacity       int
	refillTokens   int
	refillInterval time.Duration
	ttl            time.Duration
	now            func() time.Time
}

// NewTokenBucket applies defaults to unset parameters.
func NewTokenBucket(client redis.Scripter, cfg config.RateLimitConfig) *TokenBucket {
	tb := &TokenBucket{
		client:         client,
		prefix:         cfg.Prefix,
		capacity:       cfg.Capacity,
		refillTokens:   cfg.RefillTokens,
		refillInterval: cfg.RefillInterval,
		ttl:            cfg.TTL,
		now:            time.Now,
	}
	if tb.prefix == "" {
		tb.prefix = defaultPrefix
	}
	if tb.capacity <= 0 {
		tb.capacity = defaultCapacity
	}
	if tb.refillTokens <= 0 {
		tb.refillTokens = defaultRefillTokens
	}
	if tb.refillInterval <= 0 {
		tb.refillInterval = defaultRefillInterval
	}
	if tb.ttl < time.Second {
		tb.ttl = defaultTTL
	}

	return tb
}

// Allow takes one token from the bucket of key.
func (tb *TokenBucket) Allow(ctx context.Context, key string) (Decision, error) {
	vals, err := tokenBucketScript.Run(ctx, tb.client, []string{tb.prefix + ":" + key},
		tb.now().UnixMilli(),
		tb.capacity,
		tb.refillTokens,
		tb.refillInterval.Milliseconds(),
		int64(tb.ttl/time.Second),
	).Slice()
	if err != nil {
		return Decision{}, errors.Wrap(err, "token bucket script failed")
	}
	if len(vals) != 3 {
		return Decision{}, errors.Errorf("unexpected token bucket result: %v", vals)
	}

	return Decision{
		Allowed:    asInt64(vals[0]) == 1,
		Limit:      tb.capacity,
		Remaining:  asInt64(vals[1]),
		RetryAfter: time.Duration(asInt64(vals[2])) * time.Millisecond,
	}, nil
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int64:
		return t
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n
		}
	}

	n, _ := strconv.ParseInt(fmt.Sprint(v), 10, 64)

	return n
}
