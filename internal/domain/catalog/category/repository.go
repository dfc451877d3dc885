package category

import "context"

type CategoryRepository interface {
	Create(ctx context.Context, category Category) (Category, error)
	GetByID(ctx context.Context, id string) (Category, error)
	List(ctx context.Context) ([]Category, error)
	Update(ctx context.Context, req UpdateCategoryRequest) error
	Delete(ctx context.Context, id string) error
}
