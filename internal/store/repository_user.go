// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/jackc/pgerrcode"
)

type userRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewUserRepository returns a PostgreSQL-backed [UserRepository].
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("UserRepository created")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.Email, user.Name, user.PasswordHash, user.CreatedAt)

	var created models.User
	if err := row.Scan(&created.UserID, &created.Email, &created.Name, &created.PasswordHash, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, r.db.wrapError(ErrExecutingQuery, err)
		}
	}

	return created, nil
}

func (r *userRepository) CreateUserIfNotExists(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUserIfNotExists, user.UserID, user.Email, user.Name, user.PasswordHash, user.CreatedAt)

	var created models.User
	err := row.Scan(&created.UserID, &created.Email, &created.Name, &created.PasswordHash, &created.CreatedAt)
	switch {
	case err == nil:
		log.Info().Str("func", "*userRepository.CreateUserIfNotExists").Str("user_id", created.UserID).Msg("user created")
		return created, nil
	case errors.Is(err, sql.ErrNoRows):
		// someone already owns the email
		return r.FindUserByEmail(ctx, user.Email)
	default:
		log.Err(err).Str("func", "*userRepository.CreateUserIfNotExists").Msg("error inserting user")
		return models.User{}, r.db.wrapError(ErrExecutingQuery, err)
	}
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	if err := row.Scan(&found.UserID, &found.Email, &found.Name, &found.PasswordHash, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error scanning user")
		return models.User{}, r.db.wrapError(ErrScanningRow, err)
	}

	return found, nil
}

var _ UserRepository = (*userRepository)(nil)

