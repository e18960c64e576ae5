// Package common defines shared constants and sentinel errors used across
// server and client layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors.
	ErrArgumentInvalid = errors.New("invalid argument")

	// Credential errors.
	ErrPasswordMismatch    = errors.New("password mismatch")
	ErrHashFailure         = errors.New("password hash failure")
	ErrVerificationFailure = errors.New("credential verification failure")

	// Token lifecycle errors. Verification failures wrap ErrorUnauthorized so
	// that callers can treat every rejected token the same way.
	ErrTokenGeneration = errors.New("token generation failure")
	ErrInvalidToken    = fmt.Errorf("invalid token: %w", ErrorUnauthorized)
	ErrTokenExpired    = fmt.Errorf("token expired: %w", ErrorUnauthorized)
)
