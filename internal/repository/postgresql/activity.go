package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/bizdash-go/internal/domain/catalog/activity"
	"github.com/cmlabs-hris/bizdash-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.ActivityRepository {
	return &activityRepositoryImpl{db: db}
}

// Create implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Create(ctx context.Context, a activity.Activity) (activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	id, err := newID()
	if err != nil {
		return activity.Activity{}, err
	}

	query := `
		INSERT INTO activities (id, name, description, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, description, is_active
	`

	var result activity.Activity
	err = q.QueryRow(ctx, query, id, a.Name, a.Description, a.IsActive).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.IsActive,
	)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return activity.Activity{}, activity.ErrActivityNameExists
		}
		return activity.Activity{}, fmt.Errorf("failed to create activity: %w", err)
	}

	return result, nil
}

// GetByID implements activity.ActivityRepository.
func (r *activityRepositoryImpl) GetByID(ctx context.Context, id string) (activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	var result activity.Activity
	err := q.QueryRow(ctx, `SELECT id, name, description, is_active FROM activities WHERE id = $1`, id).Scan(
		&result.ID,
		&result.Name,
		&result.Description,
		&result.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return activity.Activity{}, activity.ErrActivityNotFound
		}
		return activity.Activity{}, fmt.Errorf("failed to get activity: %w", err)
	}

	return result, nil
}

// List implements activity.ActivityRepository.
func (r *activityRepositoryImpl) List(ctx context.Context) ([]activity.Activity, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, is_active FROM activities ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}
	defer rows.Close()

	var activities []activity.Activity
	for rows.Next() {
		var a activity.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Description, &a.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return activities, nil
}

// Update implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Update(ctx context.Context, req activity.UpdateActivityRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE activities SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}

	if req.Description != nil {
		query += fmt.Sprintf(", description = $%d", argIdx)
		args = append(args, *req.Description)
		argIdx++
	}

	if req.IsActive != nil {
		query += fmt.Sprintf(", is_active = $%d", argIdx)
		args = append(args, *req.IsActive)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if _, ok := isUniqueViolation(err); ok {
			return activity.ErrActivityNameExists
		}
		return fmt.Errorf("failed to update activity: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return activity.ErrActivityNotFound
	}

	return nil
}

// Delete implements activity.ActivityRepository.
func (r *activityRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return activity.ErrActivityInUse
		}
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return activity.ErrActivityNotFound
	}

	return nil
}
