package currency

import (
	"time"

	"github.com/shopspring/decimal"
)

// BaseCode is the currency every amount is converted into.
const BaseCode = "EGP"

type Currency struct {
	ID           string
	Code         string
	Name         string
	ExchangeRate decimal.Decimal // units of EGP per one unit of Code
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (c Currency) IsBase() bool {
	return c.Code == BaseCode
}
