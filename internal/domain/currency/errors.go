package currency

import "errors"

var (
	ErrCurrencyNotFound      = errors.New("currency not found")
	ErrCurrencyCodeExists    = errors.New("currency code already exists")
	ErrBaseCurrencyImmutable = errors.New("the base currency EGP cannot be changed or deleted")
	ErrCurrencyInUse         = errors.New("currency is referenced by revenue entries")
)
