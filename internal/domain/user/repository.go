package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (AuthUser, error)
	GetByEmail(ctx context.Context, email string) (AuthUser, error)
}
