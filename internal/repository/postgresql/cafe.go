package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/cafe"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type cafeRepositoryImpl struct {
	db *database.DB
}

func NewCafeRepository(db *database.DB) cafe.CafeRepository {
	return &cafeRepositoryImpl{db: db}
}

// Create implements cafe.CafeRepository.
func (r *cafeRepositoryImpl) Create(ctx context.Context, c cafe.Cafe) (cafe.Cafe, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return cafe.Cafe{}, err
	}

	query := `
		INSERT INTO cafes (id, name, branch, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, branch, description
	`

	var result cafe.Cafe
	err = q.QueryRow(ctx, query, id, c.Name, c.Branch, c.Description).Scan(
		&result.ID,
		&result.Name,
		&result.Branch,
		&result.Description,
	)
	if err != nil {
		return cafe.Cafe{}, fmt.Errorf("failed to create cafe: %w", err)
	}

	return result, nil
}

// GetByID implements cafe.CafeRepository.
func (r *cafeRepositoryImpl) GetByID(ctx context.Context, id string) (cafe.Cafe, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, branch, description
		FROM cafes
		WHERE id = $1
	`

	var result cafe.Cafe
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Name,
		&result.Branch,
		&result.Description,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return cafe.Cafe{}, cafe.ErrCafeNotFound
		}
		return cafe.Cafe{}, fmt.Errorf("failed to get cafe: %w", err)
	}

	return result, nil
}

// List implements cafe.CafeRepository.
func (r *cafeRepositoryImpl) List(ctx context.Context) ([]cafe.Cafe, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, branch, description FROM cafes ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get cafes: %w", err)
	}
	defer rows.Close()

	var cafes []cafe.Cafe
	for rows.Next() {
		var c cafe.Cafe
		if err := rows.Scan(&c.ID, &c.Name, &c.Branch, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan cafe: %w", err)
		}
		cafes = append(cafes, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return cafes, nil
}

// Update implements cafe.CafeRepository.
func (r *cafeRepositoryImpl) Update(ctx context.Context, req cafe.UpdateCafeRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE cafes SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	if req.Branch != nil {
		query += fmt.Sprintf(", branch = $%d", argIdx)
		args = append(args, *req.Branch)
		argIdx++
	}

	if req.Description != nil {
		query += fmt.Sprintf(", description = $%d", argIdx)
		args = append(args, *req.Description)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update cafe: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return cafe.ErrCafeNotFound
	}

	return nil
}

// Delete implements cafe.CafeRepository.
func (r *cafeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM cafes WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return cafe.ErrCafeInUse
		}
		return fmt.Errorf("failed to delete cafe: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return cafe.ErrCafeNotFound
	}

	return nil
}
