package auth

import (
	"context"
	"fmt"

	"github.com/sailshr/hrms-backend-go/internal/domain/auth"
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
	"github.com/sailshr/hrms-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		// Same response for unknown email and wrong password.
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateAccessToken(u)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		User:        sessionUser(u),
	}, nil
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.SessionUser, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.SessionUser{}, err
	}
	return sessionUser(u), nil
}

func sessionUser(u user.AuthUser) auth.SessionUser {
	return auth.SessionUser{
		ID:         u.ID,
		Email:      u.Email,
		Role:       string(u.Role),
		EmployeeID: u.EmployeeID,
	}
}
