package dashboard

import (
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// TopEmployeesLimit is the number of employees ranked on the dashboard.
const TopEmployeesLimit = 5

type TotalRevenueRow struct {
	Total   decimal.Decimal
	Entries int64
}

type ActivityRevenueRow struct {
	ActivityID   string
	ActivityName string
	Total        decimal.Decimal
}

type TopEmployeeRow struct {
	EmployeeID   string
	EmployeeName string
	Total        decimal.Decimal
}

type SummaryRequest struct {
	Month string // YYYY-MM, current month when empty
}

func (r *SummaryRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Month != "" {
		if _, ok := validator.IsValidMonth(r.Month); !ok {
			errs.Add("month", "month must be YYYY-MM")
		}
	}
	return errs.Err()
}

type ActivityRevenue struct {
	ID       string          `json:"_id"`
	Activity string          `json:"activity"`
	Total    decimal.Decimal `json:"total"`
}

type TopEmployee struct {
	ID    string          `json:"_id"`
	Name  string          `json:"name"`
	Total decimal.Decimal `json:"total"`
}

type SummaryResponse struct {
	Month           string            `json:"month"`
	TotalRevenue    decimal.Decimal   `json:"totalRevenue"`
	Entries         int64             `json:"entries"`
	Currency        string            `json:"currency"`
	ActivityRevenue []ActivityRevenue `json:"activityRevenue"`
	TopEmployees    []TopEmployee     `json:"topEmployees"`
}
