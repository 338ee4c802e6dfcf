// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-fit-tracker/internal/mock"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

// ── Register ─────────────────────────────────────────────────────────────────

func TestCredentialService_Register_Success(t *testing.T) {
	db := newMemoryStore()
	clock := newManualClock()
	svc := newTestCredentialService(t, db, clock)

	user, err := svc.Register(context.Background(), "  Alice@Example.com ", "hunter22", " Alice ")
	require.NoError(t, err)

	assert.NotEmpty(t, user.UserID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, clock.Now(), user.CreatedAt)
	assert.NotEqual(t, "hunter22", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("hunter22")))
}

func TestCredentialService_Register_EmailTaken(t *testing.T) {
	db := newMemoryStore()
	svc := newTestCredentialService(t, db, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "hunter22", "Alice")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ALICE@example.com", "other", "Other")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 1, db.userCount())
}

// TestCredentialService_Register_GuestEmailReserved verifies that nobody can
// claim the guest address, before or after the guest account exists.
func TestCredentialService_Register_GuestEmailReserved(t *testing.T) {
	db := newMemoryStore()
	svc := newTestCredentialService(t, db, nil)
	ctx := context.Background()

	_, err := svc.Register(ctx, " Guest@Guest.com ", "mine", "Mallory")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Zero(t, db.userCount())

	guest, err := svc.GetOrCreateGuest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Guest", guest.Name)

	_, err = svc.Register(ctx, "guest@guest.com", "mine", "Mallory")
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, 1, db.userCount())
}

func TestCredentialService_Register_InvalidInput(t *testing.T) {
	svc := newTestCredentialService(t, newMemoryStore(), nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"empty email", "", "pw"},
		{"blank email", "   ", "pw"},
		{"empty password", "a@b.c", ""},
		{"password too long", "a@b.c", strings.Repeat("x", 73)},
		{"malformed email", "not-an-email", "pw"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.email, tt.password, "")
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestCredentialService_Register_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := newTestCredentialService(t, users, nil)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrStoreUnavailable)

	_, err := svc.Register(context.Background(), "a@b.c", "pw", "")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestCredentialService_Authenticate(t *testing.T) {
	db := newMemoryStore()
	svc := newTestCredentialService(t, db, nil)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice@example.com", "hunter22", "Alice")
	require.NoError(t, err)

	t.Run("correct password", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "alice@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, registered.UserID, user.UserID)
	})

	t.Run("email is normalised", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, " ALICE@example.COM", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, registered.UserID, user.UserID)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, wrongPassword := svc.Authenticate(ctx, "alice@example.com", "wrongpass")
		_, unknownEmail := svc.Authenticate(ctx, "nobody@example.com", "hunter22")

		assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
		assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Authenticate(ctx, "alice@example.com", "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestCredentialService_Authenticate_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := newTestCredentialService(t, users, nil)

	users.EXPECT().FindUserByEmail(gomock.Any(), "a@b.c").Return(models.User{}, errors.New("connection reset"))

	_, err := svc.Authenticate(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestCredentialService_Authenticate_MalformedStoredHash(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := newTestCredentialService(t, users, nil)

	users.EXPECT().FindUserByEmail(gomock.Any(), "a@b.c").
		Return(models.User{UserID: "u1", Email: "a@b.c", PasswordHash: "plain"}, nil)

	_, err := svc.Authenticate(context.Background(), "a@b.c", "plain")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// ── Guest ────────────────────────────────────────────────────────────────────

func TestCredentialService_GetOrCreateGuest(t *testing.T) {
	db := newMemoryStore()
	svc := newTestCredentialService(t, db, nil)
	ctx := context.Background()

	first, err := svc.GetOrCreateGuest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "guest@guest.com", first.Email)
	assert.Equal(t, "Guest", first.Name)

	second, err := svc.GetOrCreateGuest(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, 1, db.userCount())

	// the guest can also log in with the configured password
	user, err := svc.Authenticate(ctx, "guest@guest.com", "guest")
	require.NoError(t, err)
	assert.Equal(t, first.UserID, user.UserID)
}

func TestCredentialService_GetOrCreateGuest_Concurrent(t *testing.T) {
	db := newMemoryStore()
	svc := newTestCredentialService(t, db, nil)

	const workers = 8
	ids := make([]string, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			guest, err := svc.GetOrCreateGuest(context.Background())
			assert.NoError(t, err)
			ids[i] = guest.UserID
		}()
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
	assert.Equal(t, 1, db.userCount())
}

func TestCredentialService_GetOrCreateGuest_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := newTestCredentialService(t, users, nil)

	winner := models.User{UserID: "winner", Email: "guest@guest.com", Name: "Guest"}
	gomock.InOrder(
		users.EXPECT().FindUserByEmail(gomock.Any(), "guest@guest.com").Return(models.User{}, store.ErrNoUserWasFound),
		users.EXPECT().CreateUserIfNotExists(gomock.Any(), gomock.Any()).Return(winner, nil),
	)

	guest, err := svc.GetOrCreateGuest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "winner", guest.UserID)
}

func TestCredentialService_GetOrCreateGuest_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	svc := newTestCredentialService(t, users, nil)

	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrStoreUnavailable)

	_, err := svc.GetOrCreateGuest(context.Background())
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}
