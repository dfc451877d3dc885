package revenue

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entry is one employee revenue record. ExchangeRate and EGPAmount are the
// snapshot taken when the entry was last written and are never recomputed on read.
type Entry struct {
	ID           string
	EmployeeID   string
	ActivityID   string
	CurrencyID   string
	Amount       decimal.Decimal
	ExchangeRate decimal.Decimal
	EGPAmount    decimal.Decimal
	Date         time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeName string
	ActivityName string
	CurrencyCode string
	CurrencyName string
}

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Window is the half-open interval [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && t.Before(w.To)
}

// EmployeeTotal is the aggregate for one employee inside a window.
type EmployeeTotal struct {
	EmployeeID   string
	EmployeeName string
	Total        decimal.Decimal
}
