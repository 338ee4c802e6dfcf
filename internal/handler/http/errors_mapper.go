// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/service"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/models"
)

type httpError struct {
	status  int
	message string
}

// errorStatusMap translates sentinels into responses. No sentinel here wraps
// another, so the match does not depend on map order.
var errorStatusMap = map[error]httpError{
	ErrInvalidJSON:   {http.StatusBadRequest, "Invalid JSON was passed"},
	ErrInvalidAction: {http.StatusBadRequest, "Invalid action"},

	service.ErrInvalidCredentials:    {http.StatusUnauthorized, "Invalid credentials"},
	service.ErrEmailTaken:            {http.StatusBadRequest, "Email already in use"},
	service.ErrInvalidDataProvided:   {http.StatusBadRequest, "Invalid data provided"},
	service.ErrTooManyAttempts:       {http.StatusTooManyRequests, "Too many login attempts"},
	service.ErrUnauthenticated:       {http.StatusUnauthorized, "Unauthorized"},
	service.ErrSessionCreationFailed: {http.StatusInternalServerError, "Failed to create session"},
	service.ErrStoreUnavailable:      {http.StatusInternalServerError, "Authentication failed"},
}

var errInternal = httpError{http.StatusInternalServerError, "Authentication failed"}

func mapError(err error) httpError {
	for target, mapped := range errorStatusMap {
		if errors.Is(err, target) {
			return mapped
		}
	}
	return errInternal
}

// writeError logs err and answers with the mapped status and {"error": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	mapped := mapError(err)

	if mapped.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", mapped.status).Msg("request failed")
	} else {
		log.Info().AnErr("error", err).Int("status", mapped.status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Error: mapped.message}, mapped.status); writeErr != nil {
		log.Err(writeErr).Msg("error writing response")
	}
}
