// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-fit-tracker/internal/limiter"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// throttledCredentialService counts failed logins per normalised email and
// rejects further attempts once the limiter blocks the email. Limiter
// failures are logged and ignored so that a Redis outage never blocks logins.
type throttledCredentialService struct {
	inner   CredentialService
	limiter limiter.LoginLimiter
}

// NewThrottledCredentialService returns a wrapper applying l to Authenticate.
func NewThrottledCredentialService(l limiter.LoginLimiter) CredentialServiceWrapper {
	return &throttledCredentialService{limiter: l}
}

func (t *throttledCredentialService) Wrap(inner CredentialService) CredentialService {
	t.inner = inner
	return t
}

func (t *throttledCredentialService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)
	key := models.NormalizeEmail(email)

	if err := t.limiter.Check(ctx, key); err != nil {
		if errors.Is(err, limiter.ErrTooManyAttempts) {
			log.Warn().Str("func", "throttledCredentialService.Authenticate").Msg("login attempts exhausted")
			return models.User{}, fmt.Errorf("%w: %w", ErrTooManyAttempts, err)
		}
		log.Err(err).Str("func", "throttledCredentialService.Authenticate").Msg("limiter check failed")
	}

	user, err := t.inner.Authenticate(ctx, email, password)
	switch {
	case err == nil:
		if resetErr := t.limiter.Reset(ctx, key); resetErr != nil {
			log.Err(resetErr).Str("func", "throttledCredentialService.Authenticate").Msg("limiter reset failed")
		}
	case errors.Is(err, ErrInvalidCredentials):
		if failErr := t.limiter.RecordFailure(ctx, key); failErr != nil {
			log.Err(failErr).Str("func", "throttledCredentialService.Authenticate").Msg("limiter record failed")
		}
	}

	return user, err
}

func (t *throttledCredentialService) Register(ctx context.Context, email, password, name string) (models.User, error) {
	return t.inner.Register(ctx, email, password, name)
}

func (t *throttledCredentialService) GetOrCreateGuest(ctx context.Context) (models.User, error) {
	return t.inner.GetOrCreateGuest(ctx)
}
