package jwt

import "errors"

var (
	ErrWhileCreatingToken   = errors.New("error while creating token")
	ErrUnexpectedSignMethod = errors.New("unexpected signing method")
	ErrInvalidToken         = errors.New("invalid token")
)
