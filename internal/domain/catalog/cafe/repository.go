package cafe

import "context"

type CafeRepository interface {
	Create(ctx context.Context, cafe Cafe) (Cafe, error)
	GetByID(ctx context.Context, id string) (Cafe, error)
	List(ctx context.Context) ([]Cafe, error)
	Update(ctx context.Context, req UpdateCafeRequest) error
	Delete(ctx context.Context, id string) error
}
