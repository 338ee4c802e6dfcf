// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// memoryStore is an in-memory UserRepository and SessionRepository with the
// same uniqueness rules as the Postgres schema.
type memoryStore struct {
	mu       sync.Mutex
	users    map[string]models.User    // by id
	sessions map[string]models.Session // by id
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:    make(map[string]models.User),
		sessions: make(map[string]models.Session),
	}
}

func (m *memoryStore) userByEmail(email string) (models.User, bool) {
	for _, u := range m.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (m *memoryStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.userByEmail(user.Email); ok {
		return models.User{}, store.ErrEmailAlreadyExists
	}
	m.users[user.UserID] = user
	return user, nil
}

func (m *memoryStore) CreateUserIfNotExists(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.userByEmail(user.Email); ok {
		return existing, nil
	}
	m.users[user.UserID] = user
	return user, nil
}

func (m *memoryStore) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.userByEmail(email); ok {
		return u, nil
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *memoryStore) ReplaceUserSession(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[session.UserID]; !ok {
		return store.ErrNoUserWasFound
	}
	for id, s := range m.sessions {
		if s.UserID == session.UserID {
			delete(m.sessions, id)
		}
	}
	for _, s := range m.sessions {
		if s.Token == session.Token {
			return store.ErrSessionAlreadyExists
		}
	}
	m.sessions[session.ID] = session
	return nil
}

func (m *memoryStore) FindSessionByToken(_ context.Context, token string) (models.SessionUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		if s.Token == token {
			return models.SessionUser{Session: s, User: m.users[s.UserID]}, nil
		}
	}
	return models.SessionUser{}, store.ErrSessionNotFound
}

func (m *memoryStore) DeleteSession(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

func (m *memoryStore) deleteWhere(match func(models.Session) bool) int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int64
	for id, s := range m.sessions {
		if match(s) {
			delete(m.sessions, id)
			n++
		}
	}
	return n
}

func (m *memoryStore) DeleteSessionByToken(_ context.Context, token string) (int64, error) {
	return m.deleteWhere(func(s models.Session) bool { return s.Token == token }), nil
}

func (m *memoryStore) DeleteUserSessions(_ context.Context, userID string) (int64, error) {
	return m.deleteWhere(func(s models.Session) bool { return s.UserID == userID }), nil
}

func (m *memoryStore) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	return m.deleteWhere(func(s models.Session) bool { return !now.Before(s.ExpiresAt) }), nil
}

func (m *memoryStore) sessionCount(userID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, s := range m.sessions {
		if s.UserID == userID {
			n++
		}
	}
	return n
}

func (m *memoryStore) userCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.users)
}

var (
	_ store.UserRepository    = (*memoryStore)(nil)
	_ store.SessionRepository = (*memoryStore)(nil)
)

// manualClock is a settable time source.
type manualClock struct {
	mu sync.Mutex
	t  time.Time
}

func newManualClock() *manualClock {
	return &manualClock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *manualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = t
}

func (c *manualClock) Advance(d time.Duration) {
	c.Set(c.Now().Add(d))
}
