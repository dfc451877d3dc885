package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/currency"
	"github.com/cmlabs-hris/bizdash-go/internal/domain/dashboard"
	revenueservice "github.com/cmlabs-hris/bizdash-go/internal/service/revenue"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
	loc *time.Location
	now func() time.Time
}

func NewDashboardService(repo dashboard.DashboardRepository, loc *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository: repo,
		loc:                 loc,
		now:                 time.Now,
	}
}

// Summary returns the month's revenue figures. The three aggregates are
// independent, so each runs in its own goroutine.
func (s *DashboardServiceImpl) Summary(ctx context.Context, req dashboard.SummaryRequest) (dashboard.SummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return dashboard.SummaryResponse{}, err
	}

	window, err := revenueservice.MonthWindow(req.Month, s.now(), s.loc)
	if err != nil {
		return dashboard.SummaryResponse{}, err
	}

	var (
		total      dashboard.TotalRevenueRow
		byActivity []dashboard.ActivityRevenueRow
		top        []dashboard.TopEmployeeRow
	)

	g, gCtx := errgroup.WithContext(ctx)

	// 1. Total revenue and entry count
	g.Go(func() error {
		row, err := s.TotalRevenue(gCtx, window.From, window.To)
		if err != nil {
			return fmt.Errorf("failed to get total revenue: %w", err)
		}
		total = row
		return nil
	})

	// 2. Revenue per activity
	g.Go(func() error {
		rows, err := s.RevenueByActivity(gCtx, window.From, window.To)
		if err != nil {
			return fmt.Errorf("failed to get revenue by activity: %w", err)
		}
		byActivity = rows
		return nil
	})

	// 3. Top earners
	g.Go(func() error {
		rows, err := s.TopEmployees(gCtx, window.From, window.To, dashboard.TopEmployeesLimit)
		if err != nil {
			return fmt.Errorf("failed to get top employees: %w", err)
		}
		top = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.SummaryResponse{}, err
	}

	resp := dashboard.SummaryResponse{
		Month:           window.From.Format("2006-01"),
		TotalRevenue:    total.Total,
		Entries:         total.Entries,
		Currency:        currency.BaseCode,
		ActivityRevenue: make([]dashboard.ActivityRevenue, 0, len(byActivity)),
		TopEmployees:    make([]dashboard.TopEmployee, 0, len(top)),
	}
	for _, r := range byActivity {
		resp.ActivityRevenue = append(resp.ActivityRevenue, dashboard.ActivityRevenue{
			ID:       r.ActivityID,
			Activity: r.ActivityName,
			Total:    r.Total,
		})
	}
	for _, r := range top {
		resp.TopEmployees = append(resp.TopEmployees, dashboard.TopEmployee{
			ID:    r.EmployeeID,
			Name:  r.EmployeeName,
			Total: r.Total,
		})
	}

	return resp, nil
}
