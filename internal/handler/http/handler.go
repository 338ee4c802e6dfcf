// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/cookie"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/service"
)

// maxBodyBytes caps the size of JSON request bodies.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services
	cookies  *cookie.AuthCookies

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookies:        cookie.NewAuthCookies(cfg.App),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}
