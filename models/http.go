// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Auth actions accepted by the POST /api/auth endpoint.
const (
	AuthActionLogin      = "login"
	AuthActionRegister   = "register"
	AuthActionGuestLogin = "guestLogin"
	AuthActionLogout     = "logout"
)

// AuthRequest is the body of every authentication endpoint.
// Action is only consulted by the action-dispatching endpoint.
type AuthRequest struct {
	Action   string `json:"action,omitempty"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`

	// UserID is accepted for compatibility with older clients and ignored:
	// logout derives the user from the session cookie.
	UserID string `json:"userId,omitempty"`
}
