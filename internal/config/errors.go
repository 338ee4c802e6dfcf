// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (unknown environment, non-positive session TTL, bcrypt cost out of
	// range, empty guest account settings).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing HTTP address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidLimiterConfigs indicates non-positive limiter settings.
	ErrInvalidLimiterConfigs = errors.New("invalid limiter configuration")
	// ErrInvalidWorkerConfigs indicates a negative sweep interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
