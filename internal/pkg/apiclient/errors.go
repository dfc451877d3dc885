package apiclient

import (
	"errors"
	"fmt"
)

// AuthError is returned for 401 and 403 responses. Page loads treat it as
// an expired session.
type AuthError struct {
	StatusCode int
	Message    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("api auth error [%d]: %s", e.StatusCode, e.Message)
}

// APIError is any other non-2xx response.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Details    map[string]string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error [%d] %s: %s", e.StatusCode, e.Code, e.Message)
}

// ServerError reports whether the API failed on its side.
func (e *APIError) ServerError() bool {
	return e.StatusCode >= 500
}

// NetworkError wraps transport failures, including a cancelled request context.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "api unreachable: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsAuth reports whether err is an *AuthError.
func IsAuth(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
