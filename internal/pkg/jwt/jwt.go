package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
)

type Service interface {
	GenerateAccessToken(u user.AuthUser) (token string, expiresIn int64, err error)
	VerifyToken(tokenString string) (jwt.Token, error)
	TTLSeconds() int64
	JWTAuth() *jwtauth.JWTAuth
}

// JWTService issues and verifies HS256 session tokens. The signing secret and
// token lifetime are fixed at construction.
type JWTService struct {
	secretKey string
	ttl       time.Duration
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string, accessExpiration string) (Service, error) {
	ttl, err := time.ParseDuration(accessExpiration)
	if err != nil {
		return nil, err
	}
	return &JWTService{
		secretKey: secretKey,
		ttl:       ttl,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil),
	}, nil
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) TTLSeconds() int64 {
	return int64(j.ttl.Seconds())
}

func (j *JWTService) GenerateAccessToken(u user.AuthUser) (token string, expiresIn int64, err error) {
	now := time.Now()
	claims := map[string]interface{}{
		"sub":   u.ID,
		"role":  string(u.Role),
		"email": u.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(j.ttl).Unix(),
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	if err != nil {
		return "", 0, err
	}
	return tokenString, j.TTLSeconds(), nil
}

// VerifyToken checks the signature and expiry and returns the decoded token.
// Malformed input yields an error, never a panic.
func (j *JWTService) VerifyToken(tokenString string) (jwt.Token, error) {
	return jwtauth.VerifyToken(j.tokenAuth, tokenString)
}
