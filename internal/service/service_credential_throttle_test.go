// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-fit-tracker/internal/limiter"
	"github.com/MKhiriev/go-fit-tracker/internal/mock"
	"github.com/MKhiriev/go-fit-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubCredentialService struct {
	authenticateFn func(ctx context.Context, email, password string) (models.User, error)
	calls          int
}

func (s *stubCredentialService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	s.calls++
	return s.authenticateFn(ctx, email, password)
}

func (s *stubCredentialService) Register(context.Context, string, string, string) (models.User, error) {
	return models.User{UserID: "registered"}, nil
}

func (s *stubCredentialService) GetOrCreateGuest(context.Context) (models.User, error) {
	return models.User{UserID: "guest"}, nil
}

func TestThrottledCredentialService_SuccessResets(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mock.NewMockLoginLimiter(ctrl)
	inner := &stubCredentialService{authenticateFn: func(context.Context, string, string) (models.User, error) {
		return models.User{UserID: "u1"}, nil
	}}
	svc := NewThrottledCredentialService(l).Wrap(inner)

	gomock.InOrder(
		l.EXPECT().Check(gomock.Any(), "alice@example.com").Return(nil),
		l.EXPECT().Reset(gomock.Any(), "alice@example.com").Return(nil),
	)

	user, err := svc.Authenticate(context.Background(), " Alice@Example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
}

func TestThrottledCredentialService_FailureRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mock.NewMockLoginLimiter(ctrl)
	inner := &stubCredentialService{authenticateFn: func(context.Context, string, string) (models.User, error) {
		return models.User{}, ErrInvalidCredentials
	}}
	svc := NewThrottledCredentialService(l).Wrap(inner)

	gomock.InOrder(
		l.EXPECT().Check(gomock.Any(), "a@b.c").Return(nil),
		l.EXPECT().RecordFailure(gomock.Any(), "a@b.c").Return(nil),
	)

	_, err := svc.Authenticate(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestThrottledCredentialService_Blocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mock.NewMockLoginLimiter(ctrl)
	inner := &stubCredentialService{}
	svc := NewThrottledCredentialService(l).Wrap(inner)

	l.EXPECT().Check(gomock.Any(), "a@b.c").Return(limiter.ErrTooManyAttempts)

	_, err := svc.Authenticate(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrTooManyAttempts)
	assert.Zero(t, inner.calls)
}

func TestThrottledCredentialService_FailsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mock.NewMockLoginLimiter(ctrl)
	inner := &stubCredentialService{authenticateFn: func(context.Context, string, string) (models.User, error) {
		return models.User{UserID: "u1"}, nil
	}}
	svc := NewThrottledCredentialService(l).Wrap(inner)

	down := errors.Join(limiter.ErrLimiterUnavailable, errors.New("dial tcp: refused"))
	l.EXPECT().Check(gomock.Any(), gomock.Any()).Return(down)
	l.EXPECT().Reset(gomock.Any(), gomock.Any()).Return(down)

	user, err := svc.Authenticate(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
}

func TestThrottledCredentialService_OtherErrorsNotCounted(t *testing.T) {
	ctrl := gomock.NewController(t)
	l := mock.NewMockLoginLimiter(ctrl)
	inner := &stubCredentialService{authenticateFn: func(context.Context, string, string) (models.User, error) {
		return models.User{}, ErrStoreUnavailable
	}}
	svc := NewThrottledCredentialService(l).Wrap(inner)

	l.EXPECT().Check(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Authenticate(context.Background(), "a@b.c", "pw")
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestThrottledCredentialService_Passthrough(t *testing.T) {
	svc := NewThrottledCredentialService(limiter.NoopLimiter{}).Wrap(&stubCredentialService{})

	u, err := svc.Register(context.Background(), "a@b.c", "pw", "")
	require.NoError(t, err)
	assert.Equal(t, "registered", u.UserID)

	g, err := svc.GetOrCreateGuest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "guest", g.UserID)
}
