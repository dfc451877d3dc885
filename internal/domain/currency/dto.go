package currency

import (
	"strings"

	"github.com/cmlabs-hris/bizdash-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// RatePlaces matches the scale of the exchange_rate columns.
const RatePlaces = 6

func hasRateScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(RatePlaces))
}

type CurrencyResponse struct {
	ID           string          `json:"_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

func NewCurrencyResponse(c Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:           c.ID,
		Code:         c.Code,
		Name:         c.Name,
		ExchangeRate: c.ExchangeRate,
	}
}

type CreateCurrencyRequest struct {
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	ExchangeRate decimal.Decimal `json:"exchangeRate"`
}

func (r *CreateCurrencyRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))

	if !validator.IsValidCurrencyCode(r.Code) {
		errs.Add("code", "code must be three letters")
	}
	if validator.IsEmpty(r.Name) {
		errs.Add("name", "name is required")
	}
	if !r.ExchangeRate.IsPositive() {
		errs.Add("exchangeRate", "exchangeRate must be greater than 0")
	} else if !hasRateScale(r.ExchangeRate) {
		errs.Add("exchangeRate", "exchangeRate must have at most 6 decimal places")
	}

	return errs.Err()
}

type UpdateCurrencyRequest struct {
	ID           string           `json:"-"`
	Name         *string          `json:"name,omitempty"`
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty"`
}

func (r *UpdateCurrencyRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs.Add("id", "invalid currency id")
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs.Add("name", "name must not be empty")
	}
	if r.ExchangeRate != nil {
		if !r.ExchangeRate.IsPositive() {
			errs.Add("exchangeRate", "exchangeRate must be greater than 0")
		} else if !hasRateScale(*r.ExchangeRate) {
			errs.Add("exchangeRate", "exchangeRate must have at most 6 decimal places")
		}
	}

	return errs.Err()
}
