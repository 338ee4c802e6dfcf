// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
)

// sessionSweeperWorker periodically deletes expired sessions. Validation
// already treats them as absent, so this only bounds table growth.
type sessionSweeperWorker struct {
	sessions SessionSweeper
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionSweeperWorker(sessions SessionSweeper, interval time.Duration, logger *logger.Logger) Worker {
	return &sessionSweeperWorker{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (s *sessionSweeperWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeperWorker) sweep(ctx context.Context) {
	deleted, err := s.sessions.SweepExpiredSessions(ctx)
	if err != nil {
		s.logger.Err(err).Msg("failed to sweep expired sessions")
		return
	}
	if deleted > 0 {
		s.logger.Info().Int64("deleted", deleted).Msg("expired sessions swept")
	}
}
