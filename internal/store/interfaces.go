// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fit-tracker/models"
)

// UserRepository persists user accounts. Emails passed in are expected to be
// normalised already.
type UserRepository interface {
	// CreateUser inserts a new user and returns the stored row.
	// Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// CreateUserIfNotExists inserts user unless its email is taken and
	// returns whichever row owns the email afterwards. Safe under concurrent
	// calls thanks to the unique constraint on email.
	CreateUserIfNotExists(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns ErrNoUserWasFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	// ReplaceUserSession deletes every session of session.UserID and inserts
	// session in a single transaction.
	ReplaceUserSession(ctx context.Context, session models.Session) error

	// FindSessionByToken resolves token to its session and owner.
	// Returns ErrSessionNotFound when no row matches.
	FindSessionByToken(ctx context.Context, token string) (models.SessionUser, error)

	// DeleteSession removes a single session by its row id.
	DeleteSession(ctx context.Context, sessionID string) error

	// DeleteSessionByToken removes the session holding token and reports how
	// many rows were deleted.
	DeleteSessionByToken(ctx context.Context, token string) (int64, error)

	// DeleteUserSessions removes every session of the user.
	DeleteUserSessions(ctx context.Context, userID string) (int64, error)

	// DeleteExpiredSessions removes sessions with expires_at <= now.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
