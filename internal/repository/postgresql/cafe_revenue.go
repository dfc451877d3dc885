package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/shift"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type cafeRevenueRepositoryImpl struct {
	db *database.DB
}

func NewCafeRevenueRepository(db *database.DB) shift.RevenueRepository {
	return &cafeRevenueRepositoryImpl{db: db}
}

const cafeRevenueColumns = `id, cafe_id, shift, revenue_date, amount`

func scanCafeRevenue(row pgx.Row) (shift.Revenue, error) {
	var r shift.Revenue
	err := row.Scan(&r.ID, &r.CafeID, &r.Shift, &r.Date, &r.Amount)
	return r, err
}

func mapCafeRevenueWriteError(err error) error {
	if constraint, ok := isUniqueViolation(err); ok && constraint == "cafe_revenues_cafe_shift_date_key" {
		return shift.ErrShiftRecorded
	}
	return err
}

// Create implements shift.RevenueRepository.
func (r *cafeRevenueRepositoryImpl) Create(ctx context.Context, rev shift.Revenue) (shift.Revenue, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return shift.Revenue{}, err
	}

	query := `
		INSERT INTO cafe_revenues (id, cafe_id, shift, revenue_date, amount)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + cafeRevenueColumns

	created, err := scanCafeRevenue(q.QueryRow(ctx, query, id, rev.CafeID, rev.Shift, rev.Date, rev.Amount))
	if err != nil {
		return shift.Revenue{}, mapCafeRevenueWriteError(err)
	}
	return created, nil
}

// GetByID implements shift.RevenueRepository.
func (r *cafeRevenueRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Revenue, error) {
	q := GetQuerier(ctx, r.db)

	rev, err := scanCafeRevenue(q.QueryRow(ctx, `SELECT `+cafeRevenueColumns+` FROM cafe_revenues WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Revenue{}, shift.ErrRevenueNotFound
		}
		return shift.Revenue{}, fmt.Errorf("failed to get shift revenue: %w", err)
	}
	return rev, nil
}

// List implements shift.RevenueRepository.
func (r *cafeRevenueRepositoryImpl) List(ctx context.Context, cafeID string) ([]shift.Revenue, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cafeRevenueColumns + ` FROM cafe_revenues`
	args := []interface{}{}
	if cafeID != "" {
		query += ` WHERE cafe_id = $1`
		args = append(args, cafeID)
	}
	query += ` ORDER BY revenue_date DESC, shift ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift revenue: %w", err)
	}
	defer rows.Close()

	var result []shift.Revenue
	for rows.Next() {
		rev, err := scanCafeRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shift revenue: %w", err)
		}
		result = append(result, rev)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Update implements shift.RevenueRepository.
func (r *cafeRevenueRepositoryImpl) Update(ctx context.Context, rev shift.Revenue) (shift.Revenue, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cafe_revenues
		SET shift = $1, revenue_date = $2, amount = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + cafeRevenueColumns

	updated, err := scanCafeRevenue(q.QueryRow(ctx, query, rev.Shift, rev.Date, rev.Amount, rev.ID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Revenue{}, shift.ErrRevenueNotFound
		}
		return shift.Revenue{}, mapCafeRevenueWriteError(err)
	}
	return updated, nil
}

// Delete implements shift.RevenueRepository.
func (r *cafeRevenueRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM cafe_revenues WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shift revenue: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return shift.ErrRevenueNotFound
	}
	return nil
}
