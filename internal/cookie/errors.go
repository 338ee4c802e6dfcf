// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cookie

import "errors"

var (
	// ErrCookieNotFound is returned by Jar.Get when the cookie is absent.
	ErrCookieNotFound = errors.New("cookie not found")

	// ErrInvalidFormat is returned when a cookie value cannot be decoded.
	ErrInvalidFormat = errors.New("invalid cookie format")
)
