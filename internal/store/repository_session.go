// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/jackc/pgerrcode"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository] over the "sessions" table.
type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("SessionRepository created")
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

// ReplaceUserSession retires every session of session.UserID and stores
// session in one transaction. The owning user row is locked first, so two
// concurrent rotations for the same user run one after another and exactly
// one session survives.
func (s *sessionRepository) ReplaceUserSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx).With().
		Str("func", "sessionRepository.ReplaceUserSession").
		Str("user_id", session.UserID).
		Logger()

	lockQuery, lockArgs, err := buildLockUserQuery(session.UserID)
	if err != nil {
		return buildError(err)
	}
	deleteQuery, deleteArgs, err := buildDeleteUserSessionsQuery(session.UserID)
	if err != nil {
		return buildError(err)
	}
	insertQuery, insertArgs, err := buildInsertSessionQuery(session)
	if err != nil {
		return buildError(err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return s.wrapError(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var lockedID string
	if err = tx.QueryRowContext(ctx, lockQuery, lockArgs...).Scan(&lockedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn().Msg("session owner does not exist")
			return ErrNoUserWasFound
		}
		log.Err(err).Msg("failed to lock user row")
		return s.wrapError(ErrExecutingQuery, err)
	}

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Msg("failed to delete previous sessions")
		return s.wrapError(ErrExecutingQuery, err)
	}

	if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		log.Err(err).Msg("failed to insert session")
		if postgresError(err) == pgerrcode.UniqueViolation {
			return fmt.Errorf("%w: %s", ErrSessionAlreadyExists, constraintName(err))
		}
		return s.wrapError(ErrExecutingQuery, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return s.wrapError(ErrCommitingTransaction, err)
	}

	log.Debug().Msg("session replaced")
	return nil
}

// FindSessionByToken returns the session holding token together with its
// owner. Expiry is not checked here.
func (s *sessionRepository) FindSessionByToken(ctx context.Context, token string) (models.SessionUser, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionByTokenQuery(token)
	if err != nil {
		return models.SessionUser{}, buildError(err)
	}

	var found models.SessionUser
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(
		&found.Session.ID,
		&found.Session.UserID,
		&found.Session.Token,
		&found.Session.CreatedAt,
		&found.Session.ExpiresAt,
		&found.User.Email,
		&found.User.Name,
		&found.User.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SessionUser{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "sessionRepository.FindSessionByToken").Msg("failed to scan session row")
		return models.SessionUser{}, s.wrapError(ErrScanningRow, err)
	}
	found.User.UserID = found.Session.UserID

	return found, nil
}

func (s *sessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	query, args, err := buildDeleteSessionQuery(sessionID)
	if err != nil {
		return buildError(err)
	}

	_, err = s.exec(ctx, "sessionRepository.DeleteSession", query, args...)
	return err
}

func (s *sessionRepository) DeleteSessionByToken(ctx context.Context, token string) (int64, error) {
	query, args, err := buildDeleteSessionByTokenQuery(token)
	if err != nil {
		return 0, buildError(err)
	}

	return s.exec(ctx, "sessionRepository.DeleteSessionByToken", query, args...)
}

func (s *sessionRepository) DeleteUserSessions(ctx context.Context, userID string) (int64, error) {
	query, args, err := buildDeleteUserSessionsQuery(userID)
	if err != nil {
		return 0, buildError(err)
	}

	return s.exec(ctx, "sessionRepository.DeleteUserSessions", query, args...)
}

func (s *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredSessionsQuery(now)
	if err != nil {
		return 0, buildError(err)
	}

	return s.exec(ctx, "sessionRepository.DeleteExpiredSessions", query, args...)
}

// exec runs a statement and returns the number of affected rows.
func (s *sessionRepository) exec(ctx context.Context, funcName, query string, args ...any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return 0, s.wrapError(ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return 0, s.wrapError(ErrExecutingQuery, err)
	}

	return affected, nil
}

var _ SessionRepository = (*sessionRepository)(nil)
