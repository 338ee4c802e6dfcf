// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the application's background jobs.
// It defines the Worker interface and a Workers aggregate that runs several
// workers side by side until their context is cancelled.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// SessionSweeper is the subset of the session service the sweeper needs.
type SessionSweeper interface {
	SweepExpiredSessions(ctx context.Context) (int64, error)
}
