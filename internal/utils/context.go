// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, password
// hashing, identifier and token generation, and HTTP response writing.
package utils

import (
	"context"

	"github.com/MKhiriev/go-fit-tracker/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionUserCtxKey is the key under which the authenticated session and
// its owner are stored by the auth middleware.
var SessionUserCtxKey = contextKey("sessionUser")

// TraceIDCtxKey is the key holding the request trace identifier.
var TraceIDCtxKey = contextKey("traceID")

// WithSessionUser returns a copy of ctx carrying su.
func WithSessionUser(ctx context.Context, su models.SessionUser) context.Context {
	return context.WithValue(ctx, SessionUserCtxKey, su)
}

// GetSessionUserFromContext retrieves the authenticated session stored by
// [WithSessionUser].
//
// ok is false when the value is missing or has an unexpected type.
func GetSessionUserFromContext(ctx context.Context) (models.SessionUser, bool) {
	su, ok := ctx.Value(SessionUserCtxKey).(models.SessionUser)
	return su, ok
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace identifier or "" when absent.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
