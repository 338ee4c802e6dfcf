// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is a server-side login session. The Token is an opaque bearer
// credential: whoever presents it is authenticated as UserID until ExpiresAt.
//
// At most one Session row exists per user; issuing a new one retires the
// previous row.
type Session struct {
	// ID is the row identifier. It is never sent to clients.
	ID string `json:"-"`

	// UserID references the owning [User].
	UserID string `json:"-"`

	// Token is the opaque value carried by the HTTP-only "session" cookie.
	Token string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired reports whether the session is no longer valid at now.
// A session is valid only while now is strictly before ExpiresAt.
func (s Session) IsExpired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// SessionUser is the result of resolving a token: the session row joined
// with the public fields of its owner.
type SessionUser struct {
	Session Session
	User    User
}
