package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/activity"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/cafe"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/category"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/purchase"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/reservation"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/shift"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/currency"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, jwt.ErrTokenRevoked),
		errors.Is(err, jwt.ErrInvalidClaims):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrPasswordMismatch):
		ValidationError(w, map[string]string{"confirmPassword": err.Error()})
	case errors.Is(err, auth.ErrPasswordReused):
		Conflict(w, err.Error())

	// Employee domain errors
	case errors.Is(err, employee.ErrManagerRoleRequired):
		Forbidden(w, "Manager or supervisor role required")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrPhoneExists):
		Conflict(w, "Phone number already registered")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrEmployeeInUse):
		Conflict(w, err.Error())

	// Attendance domain errors
	case errors.Is(err, attendance.ErrUnauthorized):
		Forbidden(w, err.Error())
	case errors.Is(err, attendance.ErrAlreadyCheckedIn),
		errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrOutsideAllowedRadius):
		UnprocessableEntity(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Currency domain errors
	case errors.Is(err, currency.ErrCurrencyNotFound):
		NotFound(w, "Currency not found")
	case errors.Is(err, currency.ErrCurrencyCodeExists),
		errors.Is(err, currency.ErrBaseCurrencyImmutable),
		errors.Is(err, currency.ErrCurrencyInUse):
		Conflict(w, err.Error())

	// Revenue domain errors
	case errors.Is(err, revenue.ErrEntryNotFound):
		NotFound(w, "Revenue entry not found")
	case errors.Is(err, revenue.ErrEmployeeNotFound),
		errors.Is(err, revenue.ErrActivityNotFound),
		errors.Is(err, revenue.ErrCurrencyNotFound):
		UnprocessableEntity(w, err.Error())

	// Catalog domain errors
	case errors.Is(err, cafe.ErrCafeNotFound):
		NotFound(w, "Cafe not found")
	case errors.Is(err, category.ErrCategoryNotFound):
		NotFound(w, "Category not found")
	case errors.Is(err, activity.ErrActivityNotFound):
		NotFound(w, "Activity not found")
	case errors.Is(err, purchase.ErrPurchaseNotFound):
		NotFound(w, "Purchase not found")
	case errors.Is(err, shift.ErrRevenueNotFound):
		NotFound(w, "Shift revenue not found")
	case errors.Is(err, reservation.ErrReservationNotFound):
		NotFound(w, "Reservation not found")
	case errors.Is(err, cafe.ErrCafeInUse),
		errors.Is(err, category.ErrCategoryNameExists),
		errors.Is(err, category.ErrCategoryInUse),
		errors.Is(err, activity.ErrActivityNameExists),
		errors.Is(err, activity.ErrActivityInUse),
		errors.Is(err, shift.ErrShiftRecorded):
		Conflict(w, err.Error())
	case errors.Is(err, purchase.ErrInvalidReference):
		UnprocessableEntity(w, err.Error())

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
