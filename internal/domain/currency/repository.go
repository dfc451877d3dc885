package currency

import "context"

type CurrencyRepository interface {
	Create(ctx context.Context, currency Currency) (Currency, error)
	GetByID(ctx context.Context, id string) (Currency, error)
	GetByCode(ctx context.Context, code string) (Currency, error)
	List(ctx context.Context) ([]Currency, error)
	Update(ctx context.Context, req UpdateCurrencyRequest) error
	Delete(ctx context.Context, id string) error
}
