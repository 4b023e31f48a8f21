package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sailshr/hrms-backend-go/internal/domain/user"
	"github.com/sailshr/hrms-backend-go/internal/handler/http/response"
)

// RequireRole passes requests whose token role is in the allowed set.
func RequireRole(roles ...user.Role) func(http.Handler) http.Handler {
	allowed := make(map[user.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, "Unauthenticated")
				return
			}

			roleStr, ok := claims["role"].(string)
			if !ok {
				response.Unauthorized(w, "Unauthenticated")
				return
			}

			if _, ok := allowed[user.Role(roleStr)]; !ok {
				response.Forbidden(w, fmt.Sprintf("Role %s cannot access this resource", roleStr))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
