package revenue

import (
	"context"
	"time"
)

type RevenueRepository interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	Update(ctx context.Context, entry Entry) (Entry, error)
	Delete(ctx context.Context, id string) error

	// ListInWindow returns every entry dated in [from, to) with joined names.
	ListInWindow(ctx context.Context, from, to time.Time) ([]Entry, error)

	// ListByEmployee returns one page of an employee's entries, newest first,
	// together with the employee's total entry count.
	ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]Entry, int64, error)
}
