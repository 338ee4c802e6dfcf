// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"golang.org/x/crypto/bcrypt"
)

const testTTL = 30 * 24 * time.Hour

func testAppConfig() config.App {
	return config.App{
		Environment:   config.EnvironmentTest,
		SessionTTL:    testTTL,
		BcryptCost:    bcrypt.MinCost,
		GuestEmail:    "guest@guest.com",
		GuestName:     "Guest",
		GuestPassword: "guest",
	}
}

func newTestCredentialService(t *testing.T, users store.UserRepository, clock *manualClock) *credentialService {
	t.Helper()

	svc := NewCredentialService(users, testAppConfig(), logger.Nop()).(*credentialService)
	if clock != nil {
		svc.now = clock.Now
	}
	return svc
}

func newTestSessionService(t *testing.T, sessions store.SessionRepository, clock *manualClock) *sessionService {
	t.Helper()

	svc := NewSessionService(sessions, testAppConfig(), logger.Nop()).(*sessionService)
	if clock != nil {
		svc.now = clock.Now
	}
	return svc
}
