package activity

import "context"

type ActivityRepository interface {
	Create(ctx context.Context, activity Activity) (Activity, error)
	GetByID(ctx context.Context, id string) (Activity, error)
	List(ctx context.Context) ([]Activity, error)
	Update(ctx context.Context, req UpdateActivityRequest) error
	Delete(ctx context.Context, id string) error
}
