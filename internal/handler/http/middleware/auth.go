package middleware

import (
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/sailshr/hrms-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose bearer token is missing, malformed,
// tampered or expired. Runs after jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				if errors.Is(err, jwtauth.ErrNoTokenFound) {
					response.Unauthorized(w, "Missing bearer token")
					return
				}
				response.Unauthorized(w, "Token invalid or expired")
				return
			}

			if token == nil {
				response.Unauthorized(w, "Token invalid or expired")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
