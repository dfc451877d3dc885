package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid phone or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenExpired       = errors.New("token has expired")
	ErrPasswordMismatch   = errors.New("new password and confirmation do not match")
	ErrPasswordReused     = errors.New("new password must differ from the current one")
)
