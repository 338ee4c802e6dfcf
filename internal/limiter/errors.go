// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package limiter

import "errors"

var (
	// ErrTooManyAttempts is returned by Check once the key has used up its
	// failed attempts for the current window.
	ErrTooManyAttempts = errors.New("too many login attempts")

	// ErrLimiterUnavailable wraps Redis failures.
	ErrLimiterUnavailable = errors.New("login limiter unavailable")

	// ErrFailedToParseRedisURL is returned by Connect for a malformed URL.
	ErrFailedToParseRedisURL = errors.New("failed to parse redis url")
)
