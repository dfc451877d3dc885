package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/category"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type categoryRepositoryImpl struct {
	db *database.DB
}

func NewCategoryRepository(db *database.DB) category.CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

// Create implements category.CategoryRepository.
func (r *categoryRepositoryImpl) Create(ctx context.Context, c category.Category) (category.Category, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return category.Category{}, err
	}

	var result category.Category
	err = q.QueryRow(ctx, `INSERT INTO categories (id, name) VALUES ($1, $2) RETURNING id, name`, id, c.Name).
		Scan(&result.ID, &result.Name)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return category.Category{}, category.ErrCategoryNameExists
		}
		return category.Category{}, fmt.Errorf("failed to create category: %w", err)
	}

	return result, nil
}

// GetByID implements category.CategoryRepository.
func (r *categoryRepositoryImpl) GetByID(ctx context.Context, id string) (category.Category, error) {
	q := GetQuerier(ctx, r.db)

	var result category.Category
	err := q.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id).Scan(&result.ID, &result.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return category.Category{}, category.ErrCategoryNotFound
		}
		return category.Category{}, fmt.Errorf("failed to get category: %w", err)
	}

	return result, nil
}

// List implements category.CategoryRepository.
func (r *categoryRepositoryImpl) List(ctx context.Context) ([]category.Category, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var c category.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return categories, nil
}

// Update implements category.CategoryRepository.
func (r *categoryRepositoryImpl) Update(ctx context.Context, req category.UpdateCategoryRequest) error {
	q := GetQuerier(ctx, r.db)

	if req.Name == nil {
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1)`, req.ID).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check category: %w", err)
		}
		if !exists {
			return category.ErrCategoryNotFound
		}
		return nil
	}

	commandTag, err := q.Exec(ctx, `UPDATE categories SET name = $1, updated_at = NOW() WHERE id = $2`, *req.Name, req.ID)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return category.ErrCategoryNameExists
		}
		return fmt.Errorf("failed to update category: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

// Delete implements category.CategoryRepository.
func (r *categoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return category.ErrCategoryInUse
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}
