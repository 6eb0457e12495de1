package auth

import "errors"

var (
	// ErrSecretNotConfigured is a configuration fault, never an authentication failure.
	ErrSecretNotConfigured = errors.New("site password is not configured")
	ErrInvalidPassword     = errors.New("invalid password")
)
