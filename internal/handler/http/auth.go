// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/internal/cookie"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// authAction dispatches POST /api/auth on the "action" field of the body.
func (h *Handler) authAction(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAuthRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	switch req.Action {
	case models.AuthActionLogin:
		h.doLogin(w, r, req)
	case models.AuthActionRegister:
		h.doRegister(w, r, req)
	case models.AuthActionGuestLogin:
		h.doGuestLogin(w, r)
	case models.AuthActionLogout:
		h.doLogout(w, r, req)
	default:
		writeError(w, r, ErrInvalidAction)
	}
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAuthRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.doLogin(w, r, req)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAuthRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.doRegister(w, r, req)
}

func (h *Handler) guestLogin(w http.ResponseWriter, r *http.Request) {
	h.doGuestLogin(w, r)
}

// logout accepts an empty body.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	req, err := decodeAuthRequest(r)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, err)
		return
	}
	h.doLogout(w, r, req)
}

func (h *Handler) doLogin(w http.ResponseWriter, r *http.Request, req models.AuthRequest) {
	user, err := h.services.CredentialService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.startSession(w, r, user, http.StatusOK)
}

func (h *Handler) doRegister(w http.ResponseWriter, r *http.Request, req models.AuthRequest) {
	user, err := h.services.CredentialService.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.startSession(w, r, user, http.StatusCreated)
}

func (h *Handler) doGuestLogin(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.CredentialService.GetOrCreateGuest(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.startSession(w, r, user, http.StatusOK)
}

// doLogout revokes the session named by the cookie and clears both cookies.
// A userId in the body is not trusted and therefore not used.
func (h *Handler) doLogout(w http.ResponseWriter, r *http.Request, req models.AuthRequest) {
	log := logger.FromRequest(r)
	jar := h.cookies.Jar(w, r)

	if req.UserID != "" {
		log.Debug().Msg("ignoring userId supplied in logout body")
	}

	err := h.services.SessionService.Logout(r.Context(), cookie.SessionToken(jar), "")
	h.cookies.Clear(jar)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteJSON(w, models.AuthResponse{Success: true}, http.StatusOK); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

// startSession issues a session for user, sets the cookie pair and writes
// the success body. Nothing is set when the session cannot be stored.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	log := logger.FromRequest(r)

	session, err := h.services.SessionService.CreateSession(r.Context(), user.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	public := user.Public()
	if err = h.cookies.Set(h.cookies.Jar(w, r), session.Token, public.Name, session.ExpiresAt); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("user_id", user.UserID).Msg("session started")

	if _, err = utils.WriteJSON(w, models.AuthResponse{Success: true, User: &public}, status); err != nil {
		log.Err(err).Msg("error writing response")
	}
}

func decodeAuthRequest(r *http.Request) (models.AuthRequest, error) {
	var req models.AuthRequest

	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return req, nil
}
