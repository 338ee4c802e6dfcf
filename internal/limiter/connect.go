// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package limiter

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Connect parses url, opens a client and pings it.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisURL, err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrLimiterUnavailable, err)
	}

	return client, nil
}

// New returns a Redis-backed limiter when cfg.Storage.Redis.URL is set and a
// [NoopLimiter] otherwise. The returned close function is never nil.
func New(ctx context.Context, cfg config.StructuredConfig, log *logger.Logger) (LoginLimiter, func() error, error) {
	if cfg.Storage.Redis.URL == "" {
		log.Info().Str("func", "limiter.New").Msg("redis url is empty, login throttling disabled")
		return NoopLimiter{}, func() error { return nil }, nil
	}

	client, err := Connect(ctx, cfg.Storage.Redis.URL)
	if err != nil {
		log.Err(err).Str("func", "limiter.New").Msg("error connecting to redis")
		return nil, nil, err
	}
	log.Info().Str("func", "limiter.New").Msg("connected to redis successfully")

	return NewRedisLimiter(client, cfg.Limiter), client.Close, nil
}
