package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/bizdash-go/internal/handler/http/response"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/apiclient"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/geo"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/session"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
)

type errorResponder struct {
	store session.Store
}

// handle maps gateway and API errors to a response. Page loads that hit an
// auth error are redirected instead of answered.
func (e errorResponder) handle(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErrs validator.ValidationErrors
		locationErr    *geo.LocationError
		authErr        *apiclient.AuthError
		apiErr         *apiclient.APIError
		networkErr     *apiclient.NetworkError
	)

	switch {
	case errors.As(err, &validationErrs):
		response.ValidationError(w, validationErrs.ToMap())

	case errors.As(err, &locationErr):
		response.Fail(w, http.StatusUnprocessableEntity, locationErr.Code(), locationErr.Error(), nil)

	case errors.As(err, &authErr):
		if authErr.StatusCode == http.StatusForbidden {
			if s, ok := SessionFromContext(r.Context()); ok && r.Method == http.MethodGet {
				http.Redirect(w, r, RouteForRole(s.Role), http.StatusFound)
				return
			}
			response.Forbidden(w, authErr.Message)
			return
		}
		e.store.Clear(w)
		if r.Method == http.MethodGet {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}
		response.Unauthorized(w, authErr.Message)

	case errors.As(err, &apiErr):
		if apiErr.ServerError() {
			slog.Error("API server error", "status", apiErr.StatusCode, "error", err)
			response.BadGateway(w, "The server could not complete the request")
			return
		}
		response.Fail(w, apiErr.StatusCode, apiErr.Code, apiErr.Message, apiErr.Details)

	case errors.As(err, &networkErr):
		slog.Error("API unreachable", "error", err)
		response.BadGateway(w, "The server is unreachable")

	default:
		slog.Error("unhandled gateway error", "error", err)
		response.InternalServerError(w, "An unexpected error occurred")
	}
}
