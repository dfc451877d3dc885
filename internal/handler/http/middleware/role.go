package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/jwt"
)

// RequireManager requires manager or supervisor role
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, err := jwt.ClaimsFromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrManagerRoleRequired)
			return
		}

		if !claims.Role.CanManage() {
			response.HandleError(w, employee.ErrManagerRoleRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
