// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// New builds the workers enabled by cfg. A zero sweep interval disables the
// expired-session sweeper.
func New(sessions SessionSweeper, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := NewWorkers()
	if cfg.SessionSweepInterval > 0 {
		ws.workers = append(ws.workers, NewSessionSweeperWorker(sessions, cfg.SessionSweepInterval, logger))
	}
	return ws
}

// Run starts every worker in its own goroutine and returns once all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}

// Len reports the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
