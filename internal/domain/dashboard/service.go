package dashboard

import "context"

type DashboardService interface {
	// Summary returns monthly revenue figures computed concurrently.
	Summary(ctx context.Context, req SummaryRequest) (SummaryResponse, error)
}
