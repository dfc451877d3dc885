package dashboard

import (
	"context"
	"time"
)

// DashboardRepository runs the aggregate queries behind the summary.
// Every method covers entries dated in [from, to).
type DashboardRepository interface {
	TotalRevenue(ctx context.Context, from, to time.Time) (TotalRevenueRow, error)
	RevenueByActivity(ctx context.Context, from, to time.Time) ([]ActivityRevenueRow, error)
	TopEmployees(ctx context.Context, from, to time.Time, limit int) ([]TopEmployeeRow, error)
}
