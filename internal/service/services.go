// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/limiter"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
)

// Services groups the two authentication services.
type Services struct {
	CredentialService CredentialService
	SessionService    SessionService
}

// NewServices wires the services to the storages. Authentication is
// throttled by loginLimiter; pass limiter.NoopLimiter{} to disable it.
func NewServices(storages *store.Storages, loginLimiter limiter.LoginLimiter, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	credentials := NewCredentialService(storages.UserRepository, cfg.App, logger)

	return &Services{
		CredentialService: NewThrottledCredentialService(loginLimiter).Wrap(credentials),
		SessionService:    NewSessionService(storages.SessionRepository, cfg.App, logger),
	}
}
