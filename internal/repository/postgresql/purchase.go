package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/purchase"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type purchaseRepositoryImpl struct {
	db *database.DB
}

func NewPurchaseRepository(db *database.DB) purchase.PurchaseRepository {
	return &purchaseRepositoryImpl{db: db}
}

const purchaseSelect = `
	SELECT p.id, p.cafe_id, p.category_id, p.quantity, p.unit_price, p.total_cost, p.purchase_date,
		c.name, cat.name
	FROM purchases p
	JOIN cafes c ON c.id = p.cafe_id
	JOIN categories cat ON cat.id = p.category_id`

func scanPurchase(row pgx.Row) (purchase.Purchase, error) {
	var p purchase.Purchase
	err := row.Scan(
		&p.ID, &p.CafeID, &p.CategoryID, &p.Quantity, &p.UnitPrice, &p.TotalCost, &p.PurchaseDate,
		&p.CafeName, &p.CategoryName,
	)
	return p, err
}

// Create implements purchase.PurchaseRepository.
func (r *purchaseRepositoryImpl) Create(ctx context.Context, p purchase.Purchase) (purchase.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return purchase.Purchase{}, err
	}

	query := `
		INSERT INTO purchases (id, cafe_id, category_id, quantity, unit_price, total_cost, purchase_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err = q.QueryRow(ctx, query, id, p.CafeID, p.CategoryID, p.Quantity, p.UnitPrice, p.TotalCost, p.PurchaseDate).Scan(&p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return purchase.Purchase{}, purchase.ErrInvalidReference
		}
		return purchase.Purchase{}, fmt.Errorf("failed to create purchase: %w", err)
	}

	return p, nil
}

// GetByID implements purchase.PurchaseRepository.
func (r *purchaseRepositoryImpl) GetByID(ctx context.Context, id string) (purchase.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	p, err := scanPurchase(q.QueryRow(ctx, purchaseSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return purchase.Purchase{}, purchase.ErrPurchaseNotFound
		}
		return purchase.Purchase{}, fmt.Errorf("failed to get purchase: %w", err)
	}
	return p, nil
}

// List implements purchase.PurchaseRepository.
func (r *purchaseRepositoryImpl) List(ctx context.Context, filter purchase.PurchaseFilter) ([]purchase.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	query := purchaseSelect + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if filter.CafeID != "" {
		query += fmt.Sprintf(" AND p.cafe_id = $%d", argIdx)
		args = append(args, filter.CafeID)
		argIdx++
	}

	if filter.From != nil {
		query += fmt.Sprintf(" AND p.purchase_date >= $%d", argIdx)
		args = append(args, *filter.From)
		argIdx++
	}

	if filter.To != nil {
		query += fmt.Sprintf(" AND p.purchase_date <= $%d", argIdx)
		args = append(args, *filter.To)
		argIdx++
	}

	query += ` ORDER BY p.purchase_date DESC, p.id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}
	defer rows.Close()

	var purchases []purchase.Purchase
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return purchases, nil
}

// Update implements purchase.PurchaseRepository.
func (r *purchaseRepositoryImpl) Update(ctx context.Context, p purchase.Purchase) (purchase.Purchase, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE purchases
		SET category_id = $1, quantity = $2, unit_price = $3, total_cost = $4, purchase_date = $5,
			updated_at = NOW()
		WHERE id = $6
	`

	commandTag, err := q.Exec(ctx, query, p.CategoryID, p.Quantity, p.UnitPrice, p.TotalCost, p.PurchaseDate, p.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return purchase.Purchase{}, purchase.ErrInvalidReference
		}
		return purchase.Purchase{}, fmt.Errorf("failed to update purchase: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return purchase.Purchase{}, purchase.ErrPurchaseNotFound
	}

	return p, nil
}

// Delete implements purchase.PurchaseRepository.
func (r *purchaseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM purchases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete purchase: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return purchase.ErrPurchaseNotFound
	}
	return nil
}
