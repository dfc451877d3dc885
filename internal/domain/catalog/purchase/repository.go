package purchase

import "context"

type PurchaseRepository interface {
	Create(ctx context.Context, purchase Purchase) (Purchase, error)
	GetByID(ctx context.Context, id string) (Purchase, error)
	List(ctx context.Context, filter PurchaseFilter) ([]Purchase, error)
	Update(ctx context.Context, purchase Purchase) (Purchase, error)
	Delete(ctx context.Context, id string) error
}
