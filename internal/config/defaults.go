// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultSessionTTL      = 30 * 24 * time.Hour
	defaultBcryptCost      = 10
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLimiterAttempts = 5
	defaultLimiterWindow   = 15 * time.Minute
)

// defaultConfig returns the lowest-priority configuration source. Merging
// it last fills only the fields no other source has set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment:   EnvironmentDevelopment,
			SessionTTL:    defaultSessionTTL,
			BcryptCost:    defaultBcryptCost,
			GuestEmail:    "guest@guest.com",
			GuestName:     "Guest",
			GuestPassword: "guest",
		},
		Server: Server{
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Limiter: Limiter{
			MaxAttempts: defaultLimiterAttempts,
			Window:      defaultLimiterWindow,
		},
	}
}
