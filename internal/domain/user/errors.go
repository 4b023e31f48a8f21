package user

import "errors"

var (
	ErrUserNotFound = errors.New("User not found")
)
