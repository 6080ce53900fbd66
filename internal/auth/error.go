package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	// ErrTokenRevoked covers revoked and expired refresh tokens alike.
	ErrTokenRevoked = errors.New("token revoked")
)
