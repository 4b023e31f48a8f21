package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Me(ctx context.Context, userID string) (SessionUser, error)
}
