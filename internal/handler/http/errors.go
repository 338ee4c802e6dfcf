// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors raised by the transport layer itself.
var (
	// ErrInvalidJSON is returned when the request body is not a valid
	// JSON auth request.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidAction is returned by POST /api/auth for an unknown action.
	ErrInvalidAction = errors.New("invalid action")
)
