package shift

import "context"

type RevenueRepository interface {
	Create(ctx context.Context, revenue Revenue) (Revenue, error)
	GetByID(ctx context.Context, id string) (Revenue, error)
	// List returns all shift revenue, or one cafe's when cafeID is not empty.
	List(ctx context.Context, cafeID string) ([]Revenue, error)
	Update(ctx context.Context, revenue Revenue) (Revenue, error)
	Delete(ctx context.Context, id string) error
}
