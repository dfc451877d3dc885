package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, employee Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByPhone(ctx context.Context, phone string) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	UpdatePassword(ctx context.Context, id string, passwordHash string, firstLogin bool) error
	Delete(ctx context.Context, id string) error
}
