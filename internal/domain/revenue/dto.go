package revenue

import (
	"math"
	"strconv"
	"strings"

	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100

	// AmountPlaces matches the scale of the amount and egp_amount columns.
	AmountPlaces = 2
)

func hasAmountScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(AmountPlaces))
}

type Ref struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type CurrencyRef struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type EntryResponse struct {
	ID           string          `json:"_id"`
	Employee     Ref             `json:"employee"`
	Activity     Ref             `json:"activity"`
	Currency     CurrencyRef     `json:"currency"`
	Amount       decimal.Decimal `json:"amount"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
	EGPAmount    decimal.Decimal `json:"EGPamount"`
	Date         string          `json:"date"`
}

func NewEntryResponse(e Entry) EntryResponse {
	return EntryResponse{
		ID:           e.ID,
		Employee:     Ref{ID: e.EmployeeID, Name: e.EmployeeName},
		Activity:     Ref{ID: e.ActivityID, Name: e.ActivityName},
		Currency:     CurrencyRef{Code: e.CurrencyCode, Name: e.CurrencyName},
		Amount:       e.Amount,
		ExchangeRate: e.ExchangeRate,
		EGPAmount:    e.EGPAmount,
		Date:         e.Date.Format("2006-01-02"),
	}
}

type CreateEntryRequest struct {
	Employee string          `json:"employee"`
	Activity string          `json:"activity"`
	Currency *string         `json:"currency,omitempty"` // currency code, EGP when omitted
	Amount   decimal.Decimal `json:"amount"`
	Date     *string         `json:"date,omitempty"`
}

func (r *CreateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.Employee) {
		errs.Add("employee", "employee is required")
	}
	if !validator.IsValidUUID(r.Activity) {
		errs.Add("activity", "activity is required")
	}
	if r.Currency != nil {
		code := strings.ToUpper(strings.TrimSpace(*r.Currency))
		r.Currency = &code
		if code != "" && !validator.IsValidCurrencyCode(code) {
			errs.Add("currency", "currency must be a three letter code")
		}
	}
	if !r.Amount.IsPositive() {
		errs.Add("amount", "amount must be greater than 0")
	} else if !hasAmountScale(r.Amount) {
		errs.Add("amount", "amount must have at most 2 decimal places")
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs.Add("date", "date must be YYYY-MM-DD")
		}
	}

	return errs.Err()
}

type UpdateEntryRequest struct {
	ID       string           `json:"-"`
	Employee *string          `json:"employee,omitempty"`
	Activity *string          `json:"activity,omitempty"`
	Currency *string          `json:"currency,omitempty"`
	Amount   *decimal.Decimal `json:"amount,omitempty"`
	Date     *string          `json:"date,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "invalid revenue entry id")
	}
	if r.Employee != nil && !validator.IsValidUUID(*r.Employee) {
		errs.Add("employee", "invalid employee id")
	}
	if r.Activity != nil && !validator.IsValidUUID(*r.Activity) {
		errs.Add("activity", "invalid activity id")
	}
	if r.Currency != nil {
		code := strings.ToUpper(strings.TrimSpace(*r.Currency))
		r.Currency = &code
		if !validator.IsValidCurrencyCode(code) {
			errs.Add("currency", "currency must be a three letter code")
		}
	}
	if r.Amount != nil {
		if !r.Amount.IsPositive() {
			errs.Add("amount", "amount must be greater than 0")
		} else if !hasAmountScale(*r.Amount) {
			errs.Add("amount", "amount must have at most 2 decimal places")
		}
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs.Add("date", "date must be YYYY-MM-DD")
		}
	}

	return errs.Err()
}

// ReportQuery selects the aggregation window. Zero values mean "current".
type ReportQuery struct {
	Period Period
	Year   int
	Month  int
	Date   string
}

// ParseReportQuery reads period, year, month and date from query values.
func ParseReportQuery(get func(string) string) (ReportQuery, error) {
	var errs validator.ValidationErrors

	q := ReportQuery{
		Period: Period(strings.ToLower(get("period"))),
		Date:   get("date"),
	}
	if q.Period == "" {
		q.Period = PeriodMonthly
	}

	if s := get("year"); s != "" {
		year, err := strconv.Atoi(s)
		if err != nil {
			errs.Add("year", "year must be a number")
		}
		q.Year = year
	}
	if s := get("month"); s != "" {
		month, err := strconv.Atoi(s)
		if err != nil {
			errs.Add("month", "month must be a number")
		}
		q.Month = month
	}

	if len(errs) > 0 {
		return q, errs
	}
	return q, q.Validate()
}

func (q *ReportQuery) Validate() error {
	var errs validator.ValidationErrors

	if !q.Period.Valid() {
		errs.Add("period", "period must be one of: daily, weekly, monthly, yearly")
	}
	if q.Year != 0 && (q.Year < 1970 || q.Year > 9999) {
		errs.Add("year", "year is out of range")
	}
	if q.Month != 0 && (q.Month < 1 || q.Month > 12) {
		errs.Add("month", "month must be between 1 and 12")
	}
	if q.Date != "" {
		if _, ok := validator.IsValidDate(q.Date); !ok {
			errs.Add("date", "date must be YYYY-MM-DD")
		}
	}

	return errs.Err()
}

type EmployeeRevenue struct {
	ID       string          `json:"_id"`
	Employee Ref             `json:"employee"`
	Total    decimal.Decimal `json:"total"`
	Currency string          `json:"currency"`
}

type ReportResponse struct {
	RevenueByEmployee []EmployeeRevenue `json:"revenueByEmployee"`
	Period            Period            `json:"period"`
	From              string            `json:"from"`
	To                string            `json:"to"`
}

type EmployeeEntriesQuery struct {
	EmployeeID string
	Page       int
	Limit      int
}

// Normalize clamps page and limit into their accepted ranges.
func (q *EmployeeEntriesQuery) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultPageLimit
	}
	if q.Limit > MaxPageLimit {
		q.Limit = MaxPageLimit
	}
}

// Offset is the first row of Page. Pages too far out to address saturate at
// math.MaxInt, which is always past the last row.
func (q EmployeeEntriesQuery) Offset() int {
	if q.Limit <= 0 || q.Page <= 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

func (q *EmployeeEntriesQuery) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidUUID(q.EmployeeID) {
		errs.Add("id", "invalid employee id")
	}
	return errs.Err()
}

type EmployeeEntriesPage struct {
	Data       []EntryResponse `json:"data"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Total      int64           `json:"total"`
	TotalPages int             `json:"totalPages"`
}
