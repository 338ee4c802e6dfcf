// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PublicUser is the subset of [User] that is safe to return to clients.
type PublicUser struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned by login, registration, guest login and logout.
type AuthResponse struct {
	Success bool        `json:"success"`
	User    *PublicUser `json:"user,omitempty"`
}

// ValidateResponse is returned by the session validation endpoint.
type ValidateResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	Name          string `json:"name,omitempty"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MeResponse describes the authenticated user.
type MeResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
