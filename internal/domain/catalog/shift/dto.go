package shift

import (
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type Shift string

const (
	ShiftMorning Shift = "morning"
	ShiftEvening Shift = "evening"
)

func (s Shift) Valid() bool {
	return s == ShiftMorning || s == ShiftEvening
}

// Revenue is the takings of one cafe shift, recorded in EGP.
type Revenue struct {
	ID     string
	CafeID string
	Shift  Shift
	Date   time.Time
	Amount decimal.Decimal
}

type RevenueResponse struct {
	ID     string          `json:"_id"`
	Cafe   string          `json:"cafe"`
	Shift  Shift           `json:"shift"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

func NewRevenueResponse(r Revenue) RevenueResponse {
	return RevenueResponse{
		ID:     r.ID,
		Cafe:   r.CafeID,
		Shift:  r.Shift,
		Date:   r.Date.Format("2006-01-02"),
		Amount: r.Amount,
	}
}

type CreateRevenueRequest struct {
	Cafe   string          `json:"cafe"`
	Shift  Shift           `json:"shift"`
	Date   string          `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}

func (r *CreateRevenueRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.Cafe) {
		errs.Add("cafe", "cafe is required")
	}
	if !r.Shift.Valid() {
		errs.Add("shift", "shift must be morning or evening")
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs.Add("date", "date must be YYYY-MM-DD")
	}
	if r.Amount.IsNegative() {
		errs.Add("amount", "amount must not be negative")
	}

	return errs.Err()
}

type UpdateRevenueRequest struct {
	ID     string           `json:"-"`
	Shift  *Shift           `json:"shift,omitempty"`
	Date   *string          `json:"date,omitempty"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

func (r *UpdateRevenueRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "invalid revenue id")
	}
	if r.Shift != nil && !r.Shift.Valid() {
		errs.Add("shift", "shift must be morning or evening")
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs.Add("date", "date must be YYYY-MM-DD")
		}
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		errs.Add("amount", "amount must not be negative")
	}

	return errs.Err()
}
