package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/revenue"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type revenueRepositoryImpl struct {
	db *database.DB
}

func NewRevenueRepository(db *database.DB) revenue.RevenueRepository {
	return &revenueRepositoryImpl{db: db}
}

const revenueSelect = `
	SELECT r.id, r.employee_id, r.activity_id, r.currency_id,
		r.amount, r.exchange_rate, r.egp_amount, r.entry_date, r.created_at, r.updated_at,
		e.name, a.name, c.code, c.name
	FROM revenue_entries r
	JOIN employees e ON e.id = r.employee_id
	JOIN activities a ON a.id = r.activity_id
	JOIN currencies c ON c.id = r.currency_id`

func scanEntry(row pgx.Row) (revenue.Entry, error) {
	var e revenue.Entry
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.ActivityID, &e.CurrencyID,
		&e.Amount, &e.ExchangeRate, &e.EGPAmount, &e.Date, &e.CreatedAt, &e.UpdatedAt,
		&e.EmployeeName, &e.ActivityName, &e.CurrencyCode, &e.CurrencyName,
	)
	return e, err
}

func collectEntries(rows pgx.Rows) ([]revenue.Entry, error) {
	defer rows.Close()

	var entries []revenue.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan revenue entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return entries, nil
}

// Create implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) Create(ctx context.Context, entry revenue.Entry) (revenue.Entry, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return revenue.Entry{}, err
	}

	query := `
		INSERT INTO revenue_entries (id, employee_id, activity_id, currency_id, amount, exchange_rate, egp_amount, entry_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err = q.QueryRow(ctx, query,
		id, entry.EmployeeID, entry.ActivityID, entry.CurrencyID,
		entry.Amount, entry.ExchangeRate, entry.EGPAmount, entry.Date,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return revenue.Entry{}, fmt.Errorf("failed to create revenue entry: %w", err)
	}

	return entry, nil
}

// GetByID implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) GetByID(ctx context.Context, id string) (revenue.Entry, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEntry(q.QueryRow(ctx, revenueSelect+` WHERE r.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return revenue.Entry{}, revenue.ErrEntryNotFound
		}
		return revenue.Entry{}, fmt.Errorf("failed to get revenue entry: %w", err)
	}
	return e, nil
}

// Update implements revenue.RevenueRepository. The caller supplies the full
// entry including the fresh snapshot.
func (r *revenueRepositoryImpl) Update(ctx context.Context, entry revenue.Entry) (revenue.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE revenue_entries
		SET employee_id = $1, activity_id = $2, currency_id = $3,
			amount = $4, exchange_rate = $5, egp_amount = $6, entry_date = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.EmployeeID, entry.ActivityID, entry.CurrencyID,
		entry.Amount, entry.ExchangeRate, entry.EGPAmount, entry.Date, entry.ID,
	).Scan(&entry.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return revenue.Entry{}, revenue.ErrEntryNotFound
		}
		return revenue.Entry{}, fmt.Errorf("failed to update revenue entry: %w", err)
	}

	return entry, nil
}

// Delete implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM revenue_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete revenue entry: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return revenue.ErrEntryNotFound
	}
	return nil
}

// ListInWindow implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) ListInWindow(ctx context.Context, from, to time.Time) ([]revenue.Entry, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, revenueSelect+`
		WHERE r.entry_date >= $1 AND r.entry_date < $2
		ORDER BY r.entry_date ASC, r.id ASC`, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list revenue entries: %w", err)
	}
	return collectEntries(rows)
}

// ListByEmployee implements revenue.RevenueRepository.
func (r *revenueRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]revenue.Entry, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM revenue_entries WHERE employee_id = $1`, employeeID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count revenue entries: %w", err)
	}
	if total == 0 || offset < 0 || int64(offset) >= total {
		return nil, total, nil
	}

	rows, err := q.Query(ctx, revenueSelect+`
		WHERE r.employee_id = $1
		ORDER BY r.entry_date DESC, r.id DESC
		LIMIT $2 OFFSET $3`, employeeID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employee revenue: %w", err)
	}

	entries, err := collectEntries(rows)
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}
