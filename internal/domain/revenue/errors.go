package revenue

import "errors"

var (
	ErrEntryNotFound    = errors.New("revenue entry not found")
	ErrEmployeeNotFound = errors.New("employee referenced by revenue entry not found")
	ErrActivityNotFound = errors.New("activity referenced by revenue entry not found")
	ErrCurrencyNotFound = errors.New("currency referenced by revenue entry not found")
)
