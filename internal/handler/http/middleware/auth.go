package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired runs after jwtauth.Verifier. It rejects missing, invalid or
// revoked tokens and anything that is not an access token.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(jwtauth.TokenFromHeader(r)) {
				response.HandleError(w, jwt.ErrTokenRevoked)
				return
			}

			if _, err := jwt.ClaimsFromContext(r.Context()); err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
