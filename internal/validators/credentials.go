// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"net/mail"
	"unicode/utf8"

	"github.com/MKhiriev/go-fit-tracker/models"
)

const (
	FieldEmail    = "email"
	FieldPassword = "password"
	FieldName     = "name"
)

const (
	maxEmailLength = 254
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
	maxNameRunes     = 100
)

type CredentialsValidator struct{}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate checks a models.AuthRequest. Email is expected to be normalised
// already.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.AuthRequest:
		return v.validateAuthRequest(ctx, value, fields...)
	case *models.AuthRequest:
		return v.validateAuthRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateAuthRequest(_ context.Context, req models.AuthRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if len(req.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldName:
			if utf8.RuneCountInString(req.Name) > maxNameRunes {
				return ErrDisplayNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isValidEmail accepts a bare RFC 5322 address, rejecting display-name forms
// such as "Alice <a@x.io>".
func isValidEmail(email string) bool {
	if email == "" || len(email) > maxEmailLength {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	return addr.Address == email
}
