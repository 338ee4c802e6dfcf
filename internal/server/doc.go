// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP server and the background workers, and stops
// both gracefully on SIGINT, SIGTERM or SIGQUIT.
package server
