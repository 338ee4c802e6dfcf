// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/cookie"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/service"
	"github.com/MKhiriev/go-fit-tracker/models"
)

type fakeCredentialService struct {
	authenticate func(ctx context.Context, email, password string) (models.User, error)
	register     func(ctx context.Context, email, password, name string) (models.User, error)
	guest        func(ctx context.Context) (models.User, error)
}

func (f *fakeCredentialService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	return f.authenticate(ctx, email, password)
}

func (f *fakeCredentialService) Register(ctx context.Context, email, password, name string) (models.User, error) {
	return f.register(ctx, email, password, name)
}

func (f *fakeCredentialService) GetOrCreateGuest(ctx context.Context) (models.User, error) {
	return f.guest(ctx)
}

type fakeSessionService struct {
	create    func(ctx context.Context, userID string) (models.Session, error)
	validate  func(ctx context.Context, token string) (models.SessionUser, error)
	logout    func(ctx context.Context, token, userID string) error
	deleteAll func(ctx context.Context, userID string) error
	sweep     func(ctx context.Context) (int64, error)
}

func (f *fakeSessionService) CreateSession(ctx context.Context, userID string) (models.Session, error) {
	return f.create(ctx, userID)
}

func (f *fakeSessionService) ValidateSession(ctx context.Context, token string) (models.SessionUser, error) {
	return f.validate(ctx, token)
}

func (f *fakeSessionService) Logout(ctx context.Context, token, userID string) error {
	return f.logout(ctx, token, userID)
}

func (f *fakeSessionService) DeleteAllUserSessions(ctx context.Context, userID string) error {
	return f.deleteAll(ctx, userID)
}

func (f *fakeSessionService) SweepExpiredSessions(ctx context.Context) (int64, error) {
	return f.sweep(ctx)
}

var (
	testExpiresAt = time.Date(2026, time.November, 17, 12, 0, 0, 0, time.UTC)

	alice = models.User{
		UserID: "0192a8c4-0000-7000-8000-000000000001",
		Email:  "alice@x.io",
		Name:   "Alice",
	}
)

const aliceToken = "6f1c2d3e-4a5b-4c6d-8e7f-8091a2b3c4d5"

func testConfig(environment string) config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			Environment: environment,
			SessionTTL:  30 * 24 * time.Hour,
		},
		Server: config.Server{HTTPAddress: ":0"},
	}
}

func newTestHandler(creds service.CredentialService, sessions service.SessionService) *Handler {
	return NewHandler(&service.Services{
		CredentialService: creds,
		SessionService:    sessions,
	}, testConfig(config.EnvironmentDevelopment), logger.Nop())
}

// aliceSessions returns a session service that issues aliceToken and
// resolves it back to alice.
func aliceSessions() *fakeSessionService {
	return &fakeSessionService{
		create: func(_ context.Context, userID string) (models.Session, error) {
			return models.Session{ID: "s1", UserID: userID, Token: aliceToken, ExpiresAt: testExpiresAt}, nil
		},
		validate: func(_ context.Context, token string) (models.SessionUser, error) {
			if token != aliceToken {
				return models.SessionUser{}, service.ErrUnauthenticated
			}
			return models.SessionUser{
				Session: models.Session{ID: "s1", UserID: alice.UserID, Token: aliceToken, ExpiresAt: testExpiresAt},
				User:    alice,
			}, nil
		},
		logout: func(context.Context, string, string) error { return nil },
	}
}

func do(t *testing.T, h http.Handler, method, target, body string, cookies ...*http.Cookie) *http.Response {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	resp := rec.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func findCookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func sessionCookie(token string) *http.Cookie {
	return &http.Cookie{Name: cookie.SessionCookieName, Value: token}
}
