// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// User represents an account entity used for authentication.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the unique identifier of the user (UUID).
	UserID string `json:"id"`

	// Email is the unique login identifier. It is stored normalised
	// (see [NormalizeEmail]).
	Email string `json:"email"`

	// Name is the optional display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash is the bcrypt hash of the user's password.
	// The raw password is never stored.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// DisplayName returns the name shown in UI: the user's name, or the local
// part of the email when no name is set.
func (u User) DisplayName() string {
	if name := strings.TrimSpace(u.Name); name != "" {
		return name
	}

	local, _, _ := strings.Cut(u.Email, "@")
	return local
}

// Public strips everything but the fields that may leave the server.
func (u User) Public() PublicUser {
	return PublicUser{
		Email: u.Email,
		Name:  u.DisplayName(),
	}
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Every write and lookup goes through it so that lookups match registrations.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
