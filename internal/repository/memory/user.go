// Package memory holds the process-local store. Each repository guards its
// collection with a mutex so handlers can mutate it from concurrent requests.
package memory

import (
	"context"
	"sync"

	"github.com/sailshr/hrms-backend-go/internal/domain/user"
)

type UserRepository struct {
	mu   sync.RWMutex
	rows []user.AuthUser
}

func NewUserRepository(seed []user.AuthUser) *UserRepository {
	rows := make([]user.AuthUser, len(seed))
	copy(rows, seed)
	return &UserRepository{rows: rows}
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.AuthUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return user.AuthUser{}, user.ErrUserNotFound
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.AuthUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, row := range r.rows {
		if row.Email == email {
			return row, nil
		}
	}
	return user.AuthUser{}, user.ErrUserNotFound
}
