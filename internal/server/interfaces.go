// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until a stop signal arrives and shutdown completes, or
// until the HTTP server fails, in which case the failure is returned.
type Server interface {
	RunServer() error
	Shutdown()
}
