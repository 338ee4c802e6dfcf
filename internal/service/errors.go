// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials is returned for an unknown email and for a wrong
	// password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmailTaken is returned by registration when the email is in use.
	ErrEmailTaken = errors.New("email already in use")

	// ErrSessionCreationFailed means the session row could not be written.
	// The login flow must stop: no cookies, no success response.
	ErrSessionCreationFailed = errors.New("session creation failed")

	// ErrUnauthenticated covers missing, unknown and expired tokens.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrStoreUnavailable means persistence could not serve the call.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrInvalidDataProvided is returned for empty or unusable input.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrTooManyAttempts is returned by the throttled credential service
	// while an email is locked out.
	ErrTooManyAttempts = errors.New("too many login attempts")
)
