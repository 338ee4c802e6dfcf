// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/internal/cookie"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It reads the "session" cookie, resolves it through
// [service.SessionService.ValidateSession] and, on success, stores the
// session and its owner in the request context (see
// [utils.GetSessionUserFromContext]) before delegating to the next handler.
//
// A missing, unknown or expired token is rejected with 401; a store failure
// with 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		token := cookie.SessionToken(h.cookies.Jar(w, r))
		su, err := h.services.SessionService.ValidateSession(ctx, token)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log := logger.FromRequest(r).GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", su.User.UserID)
		})

		ctx = utils.WithSessionUser(ctx, su)
		ctx = log.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
