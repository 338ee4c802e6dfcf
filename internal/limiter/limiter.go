// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=limiter.go -destination=../mock/limiter_mock.go -package=mock

package limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "login:fail:"

// recordFailureScript increments the counter and opens the window in one
// atomic step. A counter left without a TTL gets one on the next failure.
const recordFailureScript = `
local n = redis.call('INCR', KEYS[1])
if redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n
`

// checkScript returns the current counter and gives a TTL to a counter that
// has none, so a blocked key always expires.
const checkScript = `
local n = tonumber(redis.call('GET', KEYS[1]) or '0') or 0
if n > 0 and redis.call('PTTL', KEYS[1]) == -1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n
`

var (
	recordFailureLua = redis.NewScript(recordFailureScript)
	checkLua         = redis.NewScript(checkScript)
)

// LoginLimiter counts failed logins per key.
type LoginLimiter interface {
	// Check returns ErrTooManyAttempts when key is currently blocked.
	Check(ctx context.Context, key string) error
	// RecordFailure counts one failed attempt for key.
	RecordFailure(ctx context.Context, key string) error
	// Reset forgets every failure recorded for key.
	Reset(ctx context.Context, key string) error
}

// RedisLimiter is a fixed-window [LoginLimiter]. Counting and expiry run in
// Lua scripts so that no counter can outlive its window.
type RedisLimiter struct {
	redis       redis.UniversalClient
	maxAttempts int
	window      time.Duration
}

// NewRedisLimiter builds a limiter allowing cfg.MaxAttempts failures per
// cfg.Window.
func NewRedisLimiter(client redis.UniversalClient, cfg config.Limiter) *RedisLimiter {
	return &RedisLimiter{
		redis:       client,
		maxAttempts: cfg.MaxAttempts,
		window:      cfg.Window,
	}
}

func (l *RedisLimiter) key(key string) string {
	return keyPrefix + key
}

func (l *RedisLimiter) Check(ctx context.Context, key string) error {
	count, err := checkLua.Run(ctx, l.redis, []string{l.key(key)}, l.window.Milliseconds()).Int64()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}
	if count >= int64(l.maxAttempts) {
		return ErrTooManyAttempts
	}
	return nil
}

func (l *RedisLimiter) RecordFailure(ctx context.Context, key string) error {
	if err := recordFailureLua.Run(ctx, l.redis, []string{l.key(key)}, l.window.Milliseconds()).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}
	return nil
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	if err := l.redis.Del(ctx, l.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}
	return nil
}

// NoopLimiter never blocks.
type NoopLimiter struct{}

func (NoopLimiter) Check(context.Context, string) error         { return nil }
func (NoopLimiter) RecordFailure(context.Context, string) error { return nil }
func (NoopLimiter) Reset(context.Context, string) error         { return nil }

var (
	_ LoginLimiter = (*RedisLimiter)(nil)
	_ LoginLimiter = NoopLimiter{}
)
