package auth

import (
	"context"
	"testing"

	"github.com/sailshr/hrms-backend-go/internal/domain/auth"
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
	"github.com/sailshr/hrms-backend-go/internal/pkg/jwt"
	"github.com/sailshr/hrms-backend-go/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) auth.AuthService {
	t.Helper()
	// MinCost keeps the test fast; production seeding uses the default cost.
	hash, err := bcrypt.GenerateFromPassword([]byte("Pass@123"), bcrypt.MinCost)
	require.NoError(t, err)

	userRepo := memory.NewUserRepository([]user.AuthUser{
		{ID: "usr-001", Email: "employee@sailshr.local", PasswordHash: string(hash), Role: user.RoleEmployee, EmployeeID: "emp-001"},
	})
	jwtService, err := jwt.NewJWTService("test-secret", "1h")
	require.NoError(t, err)
	return NewAuthService(userRepo, jwtService)
}

func TestLogin_Success(t *testing.T) {
	svc := newTestService(t)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "employee@sailshr.local",
		Password: "Pass@123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "usr-001", resp.User.ID)
	assert.Equal(t, "EMPLOYEE", resp.User.Role)
	assert.Equal(t, "emp-001", resp.User.EmployeeID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "employee@sailshr.local",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@sailshr.local",
		Password: "Pass@123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{Email: "employee@sailshr.local"})
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)

	_, err = svc.Login(context.Background(), auth.LoginRequest{Password: "Pass@123"})
	assert.ErrorIs(t, err, auth.ErrMissingCredentials)
}

func TestMe(t *testing.T) {
	svc := newTestService(t)

	session, err := svc.Me(context.Background(), "usr-001")
	require.NoError(t, err)
	assert.Equal(t, "employee@sailshr.local", session.Email)
	assert.Equal(t, "emp-001", session.EmployeeID)

	_, err = svc.Me(context.Background(), "usr-404")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
