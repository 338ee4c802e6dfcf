// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package limiter throttles repeated failed logins for the same account.
//
// Failures are counted per key in Redis with a fixed window: the first
// failure starts the window, further failures increment the counter, and
// once MaxAttempts failures are recorded [LoginLimiter.Check] reports
// [ErrTooManyAttempts] until the window expires. A successful login resets
// the counter.
//
// When no Redis URL is configured a no-op limiter is used.
package limiter
