package auth

import (
	"context"
)

type AuthService interface {
	// Login returns a token, or FirstLogin=true without one when the
	// employee still has to replace the initial password.
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	Logout(ctx context.Context, token string) error
}
