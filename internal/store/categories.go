package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adeyemi/task-manager-api/internal/apperr"
	"github.com/adeyemi/task-manager-api/internal/models"
)

func (s *PostgresStore) CreateCategory(ctx context.Context, userID, name string) (*models.TaskCategory, error) {
	var c models.TaskCategory
	err := s.pool.QueryRow(ctx,
		`INSERT INTO task_categories (user_id, name)
		 VALUES ($1, $2)
		 RETURNING id, user_id, name, created_at, updated_at`,
		userID, name,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "task_categories_user_name_key") {
			return nil, apperr.AlreadyExists("category already exists")
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &c, nil
}

// ListCategories returns the user's categories, optionally narrowed by
// a case-insensitive name substring.
func (s *PostgresStore) ListCategories(ctx context.Context, userID string, filter models.CategoryFilter) ([]models.TaskCategory, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, user_id, name, created_at, updated_at
		 FROM task_categories
		 WHERE user_id = $1
		   AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		 ORDER BY created_at ASC`,
		userID, filter.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var categories []models.TaskCategory
	for rows.Next() {
		var c models.TaskCategory
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetCategoryByID folds the ownership predicate into the lookup; a
// category owned by another user is indistinguishable from an absent
// one. Returns (nil, nil) on a miss.
func (s *PostgresStore) GetCategoryByID(ctx context.Context, id, userID string) (*models.TaskCategory, error) {
	var c models.TaskCategory
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, name, created_at, updated_at
		 FROM task_categories WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category by id: %w", err)
	}
	return &c, nil
}

// GetCategoryByName is an exact-match, user-scoped lookup. Returns
// (nil, nil) on a miss.
func (s *PostgresStore) GetCategoryByName(ctx context.Context, userID, name string) (*models.TaskCategory, error) {
	var c models.TaskCategory
	err := s.pool.QueryRow(ctx,
		`SELECT id, user_id, name, created_at, updated_at
		 FROM task_categories WHERE user_id = $1 AND name = $2`,
		userID, name,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get category by name: %w", err)
	}
	return &c, nil
}

// UpdateCategory renames a category under the ownership predicate.
// Returns (nil, nil) when the scoped lookup misses.
func (s *PostgresStore) UpdateCategory(ctx context.Context, id, userID, name string) (*models.TaskCategory, error) {
	var c models.TaskCategory
	err := s.pool.QueryRow(ctx,
		`UPDATE task_categories
		 SET name = $3, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, user_id, name, created_at, updated_at`,
		id, userID, name,
	).Scan(&c.ID, &c.UserID, &c.Name, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err, "task_categories_user_name_key") {
			return nil, apperr.AlreadyExists("category already exists")
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return &c, nil
}

// DeleteCategory removes a category and, via the schema's cascade, its
// tasks. Reports whether the scoped lookup hit.
func (s *PostgresStore) DeleteCategory(ctx context.Context, id, userID string) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM task_categories WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("delete category: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
