// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/internal/cookie"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/service"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// validate answers GET /api/auth/validate: 200 with the user's public fields
// for a live session, 401 {"authenticated": false} otherwise. A missing or
// stale user_info cookie is rewritten on success.
func (h *Handler) validate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	jar := h.cookies.Jar(w, r)
	token := cookie.SessionToken(jar)
	su, err := h.services.SessionService.ValidateSession(r.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			_, _ = utils.WriteJSON(w, models.ValidateResponse{Authenticated: false}, http.StatusUnauthorized)
			return
		}
		log.Err(err).Msg("session validation failed")
		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: "Session validation failed"}, http.StatusInternalServerError)
		return
	}

	public := su.User.Public()
	if _, err = h.cookies.SyncUserInfo(jar, public.Name, su.Session.ExpiresAt); err != nil {
		log.Err(err).Msg("error refreshing user_info cookie")
	}

	_, _ = utils.WriteJSON(w, models.ValidateResponse{
		Authenticated: true,
		Email:         public.Email,
		Name:          public.Name,
	}, http.StatusOK)
}

// me returns the user resolved by the auth middleware.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	su, ok := utils.GetSessionUserFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrUnauthenticated)
		return
	}

	_, _ = utils.WriteJSON(w, models.MeResponse{
		ID:    su.User.UserID,
		Email: su.User.Email,
		Name:  su.User.DisplayName(),
	}, http.StatusOK)
}
