// Package common defines sentinel errors and small helpers shared by the
// assessvault packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")

	// Account errors. ErrInvalidCredentials covers both an unknown user and
	// a wrong password.
	ErrDuplicateUsername  = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidInput       = errors.New("invalid input")

	// Cryptographic errors.
	ErrInvalidKeyMaterial   = errors.New("invalid key material")
	ErrMalformedEnvelope    = errors.New("malformed envelope")
	ErrAuthenticationFailed = errors.New("authentication failed")
)
