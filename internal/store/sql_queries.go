// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-fit-tracker/models"
)

const (
	createUser = `INSERT INTO users (id, email, name, password_hash, created_at)
    VALUES ($1, $2, NULLIF($3, ''), $4, $5)
    RETURNING id, email, COALESCE(name, ''), password_hash, created_at;`

	createUserIfNotExists = `INSERT INTO users (id, email, name, password_hash, created_at)
    VALUES ($1, $2, NULLIF($3, ''), $4, $5)
    ON CONFLICT (email) DO NOTHING
    RETURNING id, email, COALESCE(name, ''), password_hash, created_at;`

	findUserByEmail = `SELECT id, email, COALESCE(name, ''), password_hash, created_at
    FROM users
    WHERE email = $1;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var sessionUserColumns = []string{
	"s.id",
	"s.user_id",
	"s.token",
	"s.created_at",
	"s.expires_at",
	"u.email",
	"COALESCE(u.name, '')",
	"u.created_at",
}

// buildLockUserQuery selects the user row FOR UPDATE so that concurrent
// session rotations for the same user are serialised.
func buildLockUserQuery(userID string) (string, []any, error) {
	return psql.
		Select("id").
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		Suffix("FOR UPDATE").
		ToSql()
}

func buildDeleteUserSessionsQuery(userID string) (string, []any, error) {
	return psql.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildInsertSessionQuery(session models.Session) (string, []any, error) {
	return psql.
		Insert(models.Session{}.TableName()).
		Columns("id", "user_id", "token", "created_at", "expires_at").
		Values(session.ID, session.UserID, session.Token, session.CreatedAt, session.ExpiresAt).
		ToSql()
}

func buildFindSessionByTokenQuery(token string) (string, []any, error) {
	return psql.
		Select(sessionUserColumns...).
		From(models.Session{}.TableName() + " s").
		Join(models.User{}.TableName() + " u ON u.id = s.user_id").
		Where(sq.Eq{"s.token": token}).
		Limit(1).
		ToSql()
}

func buildDeleteSessionQuery(sessionID string) (string, []any, error) {
	return psql.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"id": sessionID}).
		ToSql()
}

func buildDeleteSessionByTokenQuery(token string) (string, []any, error) {
	return psql.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"token": token}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return psql.
		Delete(models.Session{}.TableName()).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}

func buildError(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}
