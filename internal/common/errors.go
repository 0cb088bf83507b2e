// Package common defines shared sentinel errors used across the storefront
// stores and the HTTP layer. Callers should use errors.Is to match these
// values.
package common

import "errors"

var (
	// Repository/storage-level errors.
	ErrNotFound      = errors.New("not found")
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// Auth errors.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid token")

	// Validation errors (bad form fields, out-of-range product values).
	ErrValidation = errors.New("validation error")

	// Generic internal failure surfaced without detail.
	ErrInternal = errors.New("internal error")
)
