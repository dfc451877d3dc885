package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/dashboard"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db}
}

// TotalRevenue returns the EGP sum and entry count in a single query
func (r *dashboardRepositoryImpl) TotalRevenue(ctx context.Context, from, to time.Time) (dashboard.TotalRevenueRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(egp_amount), 0) AS total,
			COUNT(*) AS entries
		FROM revenue_entries
		WHERE entry_date >= $1 AND entry_date < $2
	`

	var row dashboard.TotalRevenueRow
	if err := q.QueryRow(ctx, query, from, to).Scan(&row.Total, &row.Entries); err != nil {
		return dashboard.TotalRevenueRow{}, fmt.Errorf("failed to get total revenue: %w", err)
	}
	return row, nil
}

// RevenueByActivity groups the window by activity, largest first
func (r *dashboardRepositoryImpl) RevenueByActivity(ctx context.Context, from, to time.Time) ([]dashboard.ActivityRevenueRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.name, SUM(re.egp_amount) AS total
		FROM revenue_entries re
		JOIN activities a ON a.id = re.activity_id
		WHERE re.entry_date >= $1 AND re.entry_date < $2
		GROUP BY a.id, a.name
		ORDER BY total DESC, a.name ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get revenue by activity: %w", err)
	}
	defer rows.Close()

	var result []dashboard.ActivityRevenueRow
	for rows.Next() {
		var row dashboard.ActivityRevenueRow
		if err := rows.Scan(&row.ActivityID, &row.ActivityName, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan activity revenue: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// TopEmployees ranks employees by EGP revenue in the window
func (r *dashboardRepositoryImpl) TopEmployees(ctx context.Context, from, to time.Time, limit int) ([]dashboard.TopEmployeeRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.name, SUM(re.egp_amount) AS total
		FROM revenue_entries re
		JOIN employees e ON e.id = re.employee_id
		WHERE re.entry_date >= $1 AND re.entry_date < $2
		GROUP BY e.id, e.name
		ORDER BY total DESC, e.name ASC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, from, to, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top employees: %w", err)
	}
	defer rows.Close()

	var result []dashboard.TopEmployeeRow
	for rows.Next() {
		var row dashboard.TopEmployeeRow
		if err := rows.Scan(&row.EmployeeID, &row.EmployeeName, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan top employee: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
