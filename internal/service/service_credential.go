// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/internal/store"
	"github.com/MKhiriev/go-fit-tracker/internal/utils"
	"github.com/MKhiriev/go-fit-tracker/internal/validators"
	"github.com/MKhiriev/go-fit-tracker/models"
)

// credentialService is the concrete implementation of CredentialService.
// Passwords are hashed with bcrypt; emails are normalised before every
// lookup and write.
type credentialService struct {
	userRepository store.UserRepository
	hasher         *utils.PasswordHasher
	ids            *utils.UUIDGenerator
	validator      validators.Validator

	// dummyHash is compared against when the email is unknown so both
	// failure paths cost one bcrypt comparison.
	dummyHash string

	guestEmail    string
	guestName     string
	guestPassword string

	now    func() time.Time
	logger *logger.Logger
}

// NewCredentialService constructs a CredentialService over userRepository
// using the bcrypt cost and guest account settings from cfg.
func NewCredentialService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) CredentialService {
	hasher := utils.NewPasswordHasher(cfg.BcryptCost)

	return &credentialService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            utils.NewUUIDGenerator(),
		validator:      validators.NewCredentialsValidator(),
		dummyHash:      hasher.DummyHash(),
		guestEmail:     models.NormalizeEmail(cfg.GuestEmail),
		guestName:      cfg.GuestName,
		guestPassword:  cfg.GuestPassword,
		now:            time.Now,
		logger:         logger,
	}
}

func (c *credentialService) Authenticate(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = models.NormalizeEmail(email)
	if email == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := c.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_ = c.hasher.Compare(c.dummyHash, password)
			log.Info().Str("func", "credentialService.Authenticate").Msg("login for unknown email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "credentialService.Authenticate").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err = c.hasher.Compare(user.PasswordHash, password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Err(err).Str("func", "credentialService.Authenticate").Str("user_id", user.UserID).Msg("stored hash is unusable")
		} else {
			log.Info().Str("func", "credentialService.Authenticate").Str("user_id", user.UserID).Msg("wrong password")
		}
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

func (c *credentialService) Register(ctx context.Context, email, password, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	email = models.NormalizeEmail(email)
	name = strings.TrimSpace(name)
	req := models.AuthRequest{Email: email, Password: password, Name: name}
	if err := c.validator.Validate(ctx, req); err != nil {
		log.Info().Str("func", "credentialService.Register").AnErr("reason", err).Msg("registration data rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// the guest address belongs to the shared guest account only
	if email == c.guestEmail {
		log.Info().Str("func", "credentialService.Register").Msg("registration with the guest email rejected")
		return models.User{}, ErrEmailTaken
	}

	hash, err := c.hasher.Hash(password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooLong) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Str("func", "credentialService.Register").Msg("error hashing password")
		return models.User{}, err
	}

	created, err := c.userRepository.CreateUser(ctx, models.User{
		UserID:       c.ids.Generate(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    c.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrEmailTaken
		}
		log.Err(err).Str("func", "credentialService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	log.Info().Str("func", "credentialService.Register").Str("user_id", created.UserID).Msg("user registered")
	return created, nil
}

func (c *credentialService) GetOrCreateGuest(ctx context.Context) (models.User, error) {
	log := logger.FromContext(ctx)

	guest, err := c.userRepository.FindUserByEmail(ctx, c.guestEmail)
	if err == nil {
		return guest, nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("func", "credentialService.GetOrCreateGuest").Msg("guest lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	hash, err := c.hasher.Hash(c.guestPassword)
	if err != nil {
		log.Err(err).Str("func", "credentialService.GetOrCreateGuest").Msg("error hashing guest password")
		return models.User{}, err
	}

	guest, err = c.userRepository.CreateUserIfNotExists(ctx, models.User{
		UserID:       c.ids.Generate(),
		Email:        c.guestEmail,
		Name:         c.guestName,
		PasswordHash: hash,
		CreatedAt:    c.now().UTC(),
	})
	if err != nil {
		log.Err(err).Str("func", "credentialService.GetOrCreateGuest").Msg("guest creation failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return guest, nil
}
