package currency

import "context"

type CurrencyService interface {
	Create(ctx context.Context, req CreateCurrencyRequest) (CurrencyResponse, error)
	Get(ctx context.Context, id string) (CurrencyResponse, error)
	List(ctx context.Context) ([]CurrencyResponse, error)
	Update(ctx context.Context, req UpdateCurrencyRequest) (CurrencyResponse, error)
	Delete(ctx context.Context, id string) error
}
