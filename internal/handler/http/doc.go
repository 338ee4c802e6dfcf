// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, the authentication endpoints and the middleware
// that resolves the "session" cookie into the current user. Request tracing,
// access logging, panic recovery and request timeouts are handled here before
// requests are delegated to the service layer.
package http
