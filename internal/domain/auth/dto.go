package auth

import (
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
)

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Phone = validator.NormalizePhone(r.Phone)

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LoginResponse is either the first-login marker or an issued session.
type LoginResponse struct {
	FirstLogin bool                `json:"firstLogin"`
	Phone      string              `json:"phone,omitempty"`
	Token      string              `json:"token,omitempty"`
	ExpiresAt  int64               `json:"expiresAt,omitempty"`
	Employee   *AuthenticatedActor `json:"employee,omitempty"`
}

type AuthenticatedActor struct {
	ID   string        `json:"_id"`
	Name string        `json:"name"`
	Role employee.Role `json:"role"`
}

type ResetPasswordRequest struct {
	Phone           string `json:"phone"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

func (r *ResetPasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Phone = validator.NormalizePhone(r.Phone)

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	}

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "currentPassword",
			Message: "currentPassword is required",
		})
	}

	if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "newPassword must be at least 6 characters",
		})
	}

	if r.NewPassword != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirmPassword",
			Message: "confirmPassword must match newPassword",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
