package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/currency"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type currencyRepositoryImpl struct {
	db *database.DB
}

func NewCurrencyRepository(db *database.DB) currency.CurrencyRepository {
	return &currencyRepositoryImpl{db: db}
}

const currencyColumns = `id, code, name, exchange_rate, created_at, updated_at`

func scanCurrency(row pgx.Row) (currency.Currency, error) {
	var c currency.Currency
	err := row.Scan(&c.ID, &c.Code, &c.Name, &c.ExchangeRate, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// Create implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) Create(ctx context.Context, c currency.Currency) (currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return currency.Currency{}, err
	}

	query := `
		INSERT INTO currencies (id, code, name, exchange_rate)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + currencyColumns

	created, err := scanCurrency(q.QueryRow(ctx, query, id, c.Code, c.Name, c.ExchangeRate))
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return currency.Currency{}, currency.ErrCurrencyCodeExists
		}
		return currency.Currency{}, fmt.Errorf("failed to create currency: %w", err)
	}
	return created, nil
}

// GetByID implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) GetByID(ctx context.Context, id string) (currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCurrency(q.QueryRow(ctx, `SELECT `+currencyColumns+` FROM currencies WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return currency.Currency{}, currency.ErrCurrencyNotFound
		}
		return currency.Currency{}, fmt.Errorf("failed to get currency: %w", err)
	}
	return c, nil
}

// GetByCode implements currency.CurrencyRepository. The row is locked when
// called inside a transaction so the rate cannot change mid-write.
func (r *currencyRepositoryImpl) GetByCode(ctx context.Context, code string) (currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	c, err := scanCurrency(q.QueryRow(ctx, `SELECT `+currencyColumns+` FROM currencies WHERE code = UPPER($1) FOR SHARE`, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return currency.Currency{}, currency.ErrCurrencyNotFound
		}
		return currency.Currency{}, fmt.Errorf("failed to get currency by code: %w", err)
	}
	return c, nil
}

// List implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) List(ctx context.Context) ([]currency.Currency, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+currencyColumns+` FROM currencies ORDER BY code ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	defer rows.Close()

	var currencies []currency.Currency
	for rows.Next() {
		c, err := scanCurrency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		currencies = append(currencies, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return currencies, nil
}

// Update implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) Update(ctx context.Context, req currency.UpdateCurrencyRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE currencies SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	if req.ExchangeRate != nil {
		query += fmt.Sprintf(", exchange_rate = $%d", argIdx)
		args = append(args, *req.ExchangeRate)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update currency: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return currency.ErrCurrencyNotFound
	}
	return nil
}

// Delete implements currency.CurrencyRepository.
func (r *currencyRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM currencies WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return currency.ErrCurrencyInUse
		}
		return fmt.Errorf("failed to delete currency: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return currency.ErrCurrencyNotFound
	}
	return nil
}
