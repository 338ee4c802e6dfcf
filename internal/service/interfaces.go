// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

// CredentialService owns user records and password verification.
type CredentialService interface {
	// Authenticate returns the user owning email if password matches.
	// Both an unknown email and a wrong password yield ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (models.User, error)

	// Register creates a user with a bcrypt-hashed password.
	// Returns ErrEmailTaken when the email is in use.
	Register(ctx context.Context, email, password, name string) (models.User, error)

	// GetOrCreateGuest returns the shared guest account, creating it on
	// first use. Concurrent first calls all receive the same user.
	GetOrCreateGuest(ctx context.Context) (models.User, error)
}

// SessionService issues, resolves and revokes login sessions.
type SessionService interface {
	// CreateSession replaces every session of userID with a fresh one.
	CreateSession(ctx context.Context, userID string) (models.Session, error)

	// ValidateSession resolves token to its session and owner. Expired
	// sessions are deleted and reported as ErrUnauthenticated.
	ValidateSession(ctx context.Context, token string) (models.SessionUser, error)

	// Logout revokes token and, when the owner is known either from the
	// token or from userID, every session of that user. It is idempotent.
	Logout(ctx context.Context, token, userID string) error

	// DeleteAllUserSessions revokes every session of userID.
	DeleteAllUserSessions(ctx context.Context, userID string) error

	// SweepExpiredSessions deletes all expired rows and returns how many.
	SweepExpiredSessions(ctx context.Context) (int64, error)
}

// CredentialServiceWrapper decorates a CredentialService with additional
// behavior such as login throttling.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}
