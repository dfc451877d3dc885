package employee

import (
	"strings"

	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeResponse struct {
	ID          string           `json:"_id"`
	Name        string           `json:"name"`
	Phone       string           `json:"phone"`
	Email       *string          `json:"email,omitempty"`
	Role        Role             `json:"role"`
	Type        PayType          `json:"type"`
	FixedSalary *decimal.Decimal `json:"fixedSalary,omitempty"`
	FirstLogin  bool             `json:"firstLogin"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Phone:       e.Phone,
		Email:       e.Email,
		Role:        e.Role,
		Type:        e.Type,
		FixedSalary: e.FixedSalary,
		FirstLogin:  e.FirstLogin,
	}
}

type CreateEmployeeRequest struct {
	Name        string           `json:"name"`
	Phone       string           `json:"phone"`
	Email       *string          `json:"email,omitempty"`
	Password    string           `json:"password"`
	Role        Role             `json:"role"`
	Type        PayType          `json:"type"`
	FixedSalary *decimal.Decimal `json:"fixedSalary,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Name = strings.TrimSpace(r.Name)
	r.Phone = validator.NormalizePhone(r.Phone)

	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	} else if len(r.Name) > 100 {
		errs.Add("name", "name must not exceed 100 characters")
	}

	if validator.IsEmpty(r.Phone) {
		errs.Add("phone", "phone is required")
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs.Add("phone", "invalid phone number")
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "invalid email format")
	}

	if len(r.Password) < 6 {
		errs.Add("password", "password must be at least 6 characters")
	}

	if r.Role == "" {
		r.Role = RoleEmployee
	}
	if !r.Role.Valid() {
		errs.Add("role", "role must be one of: employee, manager, supervisor")
	}

	if r.Type == "" {
		r.Type = PayTypeFixed
	}
	if !r.Type.Valid() {
		errs.Add("type", "type must be one of: fixed, variable")
	}

	if r.Type == PayTypeFixed && r.FixedSalary == nil {
		errs.Add("fixedSalary", "fixedSalary is required for fixed employees")
	}
	if r.FixedSalary != nil && r.FixedSalary.IsNegative() {
		errs.Add("fixedSalary", "fixedSalary must not be negative")
	}

	return errs.Err()
}

type UpdateEmployeeRequest struct {
	ID          string           `json:"-"`
	Name        *string          `json:"name,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Role        *Role            `json:"role,omitempty"`
	Type        *PayType         `json:"type,omitempty"`
	FixedSalary *decimal.Decimal `json:"fixedSalary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "invalid employee id")
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}

	if r.Phone != nil {
		normalized := validator.NormalizePhone(*r.Phone)
		r.Phone = &normalized
		if !validator.IsValidPhoneNumber(normalized) {
			errs.Add("phone", "invalid phone number")
		}
	}

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs.Add("email", "invalid email format")
	}

	if r.Role != nil && !r.Role.Valid() {
		errs.Add("role", "role must be one of: employee, manager, supervisor")
	}

	if r.Type != nil && !r.Type.Valid() {
		errs.Add("type", "type must be one of: fixed, variable")
	}

	if r.FixedSalary != nil && r.FixedSalary.IsNegative() {
		errs.Add("fixedSalary", "fixedSalary must not be negative")
	}

	return errs.Err()
}
