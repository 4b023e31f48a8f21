package auth

import "errors"

// Auth domain errors. Messages are wire-visible.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrUnauthenticated    = errors.New("Unauthenticated")
	ErrInvalidToken       = errors.New("Token invalid or expired")
)
