package revenue

import "context"

type RevenueService interface {
	Create(ctx context.Context, req CreateEntryRequest) (EntryResponse, error)
	Update(ctx context.Context, req UpdateEntryRequest) (EntryResponse, error)
	Delete(ctx context.Context, id string) error

	Report(ctx context.Context, query ReportQuery) (ReportResponse, error)
	EmployeeEntries(ctx context.Context, query EmployeeEntriesQuery) (EmployeeEntriesPage, error)
}
