package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sailshr/hrms-backend-go/internal/domain/auth"
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
)

// requestIdentity reads the verified token claims attached by the auth
// middleware.
func requestIdentity(r *http.Request) (userID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", auth.ErrUnauthenticated
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", "", auth.ErrUnauthenticated
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", "", auth.ErrUnauthenticated
	}

	return sub, user.Role(roleStr), nil
}
