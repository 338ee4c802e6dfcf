// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// sessionService is the concrete implementation of SessionService.
//
// All state lives in the session repository; the service itself holds no
// mutable state and is safe for concurrent use.
type sessionService struct {
	sessionRepository store.SessionRepository
	ids               tokenGenerator
	ttl               time.Duration

	now    func() time.Time
	logger *logger.Logger
}

type tokenGenerator interface {
	Generate() string
	GenerateToken() (string, error)
}

// NewSessionService constructs a SessionService issuing sessions that live
// for cfg.SessionTTL.
func NewSessionService(sessionRepository store.SessionRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		ids:               utils.NewUUIDGenerator(),
		ttl:               cfg.SessionTTL,
		now:               time.Now,
		logger:            logger,
	}
}

// CreateSession mints a random token for userID, stores it with
// ExpiresAt = now + TTL and retires every previous session of the user in
// the same transaction.
//
// Any persistence failure is reported as ErrSessionCreationFailed.
func (s *sessionService) CreateSession(ctx context.Context, userID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	token, err := s.ids.GenerateToken()
	if err != nil {
		log.Err(err).Str("func", "sessionService.CreateSession").Msg("error generating token")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	now := s.now().UTC()
	session := models.Session{
		ID:        s.ids.Generate(),
		UserID:    userID,
		Token:     token,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err = s.sessionRepository.ReplaceUserSession(ctx, session); err != nil {
		log.Err(err).Str("func", "sessionService.CreateSession").Str("user_id", userID).Msg("error storing session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	log.Debug().Str("func", "sessionService.CreateSession").Str("user_id", userID).Msg("session created")
	return session, nil
}

// ValidateSession looks the token up by exact match. A session is valid only
// while now < ExpiresAt; an expired row is deleted on the spot, and a failed
// delete does not change the outcome.
func (s *sessionService) ValidateSession(ctx context.Context, token string) (models.SessionUser, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.SessionUser{}, ErrUnauthenticated
	}

	found, err := s.sessionRepository.FindSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return models.SessionUser{}, ErrUnauthenticated
		}
		log.Err(err).Str("func", "sessionService.ValidateSession").Msg("session lookup failed")
		return models.SessionUser{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if found.Session.IsExpired(s.now()) {
		if err = s.sessionRepository.DeleteSession(ctx, found.Session.ID); err != nil {
			log.Err(err).Str("func", "sessionService.ValidateSession").Str("user_id", found.Session.UserID).Msg("error deleting expired session")
		}
		return models.SessionUser{}, ErrUnauthenticated
	}

	found.User.PasswordHash = ""
	return found, nil
}

// Logout deletes the session holding token and every session of its owner.
// When userID is non-empty its sessions are deleted as well, which covers a
// token that is already gone while the caller still knows the user.
// Neither a missing token nor a missing session is an error.
func (s *sessionService) Logout(ctx context.Context, token, userID string) error {
	log := logger.FromContext(ctx)

	owners := make([]string, 0, 2)
	if userID != "" {
		owners = append(owners, userID)
	}

	if token != "" {
		found, err := s.sessionRepository.FindSessionByToken(ctx, token)
		switch {
		case err == nil:
			if found.Session.UserID != userID {
				owners = append(owners, found.Session.UserID)
			}
		case errors.Is(err, store.ErrSessionNotFound):
		default:
			log.Err(err).Str("func", "sessionService.Logout").Msg("session lookup failed")
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}

		if _, err = s.sessionRepository.DeleteSessionByToken(ctx, token); err != nil {
			log.Err(err).Str("func", "sessionService.Logout").Msg("error deleting session by token")
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	for _, owner := range owners {
		if err := s.DeleteAllUserSessions(ctx, owner); err != nil {
			return err
		}
	}

	return nil
}

func (s *sessionService) DeleteAllUserSessions(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrInvalidDataProvided
	}

	deleted, err := s.sessionRepository.DeleteUserSessions(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "sessionService.DeleteAllUserSessions").Str("user_id", userID).Msg("error deleting user sessions")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	log.Debug().Str("func", "sessionService.DeleteAllUserSessions").Str("user_id", userID).Int64("deleted", deleted).Msg("user sessions deleted")
	return nil
}

func (s *sessionService) SweepExpiredSessions(ctx context.Context) (int64, error) {
	deleted, err := s.sessionRepository.DeleteExpiredSessions(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return deleted, nil
}
