package salary

import (
	"github.com/cmlabs-hris/bizdash-go/internal/domain/employee"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type ListRequest struct {
	Month string // YYYY-MM, current month when empty
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs.Add("month", "month must be YYYY-MM")
		}
	}
	return errs.Err()
}

// Line is one employee's pay for the month. Fixed employees earn their
// fixed salary; variable employees earn the EGP total of their revenue.
type Line struct {
	EmployeeID string           `json:"employeeId"`
	Name       string           `json:"name"`
	Phone      string           `json:"phone"`
	Role       employee.Role    `json:"role"`
	Type       employee.PayType `json:"type"`
	Salary     decimal.Decimal  `json:"salary"`
	Currency   string           `json:"currency"`
}
