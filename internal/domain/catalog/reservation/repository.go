package reservation

import "context"

type ReservationRepository interface {
	Create(ctx context.Context, reservation Reservation) (Reservation, error)
	GetByID(ctx context.Context, id string) (Reservation, error)
	List(ctx context.Context) ([]Reservation, error)
	Update(ctx context.Context, reservation Reservation) (Reservation, error)
	Delete(ctx context.Context, id string) error
}
