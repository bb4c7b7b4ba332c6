package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adeyemi/task-manager-api/internal/apperr"
	"github.com/adeyemi/task-manager-api/internal/models"
)

const taskColumns = `t.id, t.user_id, t.category_id, t.title, t.details,
	c.name, t.completed, t.created_at, t.updated_at`

func scanTask(row pgx.Row) (*models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Title, &t.Details,
		&t.Category, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *PostgresStore) CreateTask(ctx context.Context, userID, categoryID, title, details string) (*models.Task, error) {
	row := s.pool.QueryRow(ctx,
		`WITH inserted AS (
			INSERT INTO tasks (user_id, category_id, title, details)
			VALUES ($1, $2, $3, $4)
			RETURNING id, user_id, category_id, title, details, completed, created_at, updated_at
		 )
		 SELECT t.id, t.user_id, t.category_id, t.title, t.details,
		        c.name, t.completed, t.created_at, t.updated_at
		 FROM inserted t
		 JOIN task_categories c ON c.id = t.category_id`,
		userID, categoryID, title, details,
	)
	task, err := scanTask(row)
	if err != nil {
		if isUniqueViolation(err, "tasks_user_category_title_key") {
			return nil, apperr.AlreadyExists("task already exists")
		}
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// ListTasks returns the user's tasks with their category names,
// narrowed by the optional conjunctive filters.
func (s *PostgresStore) ListTasks(ctx context.Context, userID string, filter models.TaskFilter) ([]models.Task, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks t
		 JOIN task_categories c ON c.id = t.category_id
		 WHERE t.user_id = $1
		   AND ($2 = '' OR t.category_id = NULLIF($2, '')::uuid)
		   AND ($3 = '' OR t.title ILIKE '%' || $3 || '%')
		   AND ($4::boolean IS NULL OR t.completed = $4)
		 ORDER BY t.created_at DESC`,
		userID, filter.CategoryID, filter.Title, filter.Completed,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

// GetTaskByID is an ownership-scoped lookup; (nil, nil) on a miss.
func (s *PostgresStore) GetTaskByID(ctx context.Context, id, userID string) (*models.Task, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks t
		 JOIN task_categories c ON c.id = t.category_id
		 WHERE t.id = $1 AND t.user_id = $2`,
		id, userID,
	)
	task, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get task by id: %w", err)
	}
	return task, nil
}

// UpdateTask overwrites only the non-nil patch fields under the
// ownership predicate. Returns (nil, nil) when the scoped lookup
// misses.
func (s *PostgresStore) UpdateTask(ctx context.Context, id, userID string, patch models.UpdateTaskRequest) (*models.Task, error) {
	row := s.pool.QueryRow(ctx,
		`WITH updated AS (
			UPDATE tasks
			SET title      = COALESCE($3, title),
			    details    = COALESCE($4, details),
			    completed  = COALESCE($5, completed),
			    updated_at = NOW()
			WHERE id = $1 AND user_id = $2
			RETURNING id, user_id, category_id, title, details, completed, created_at, updated_at
		 )
		 SELECT t.id, t.user_id, t.category_id, t.title, t.details,
		        c.name, t.completed, t.created_at, t.updated_at
		 FROM updated t
		 JOIN task_categories c ON c.id = t.category_id`,
		id, userID, patch.Title, patch.Details, patch.Completed,
	)
	task, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		if isUniqueViolation(err, "tasks_user_category_title_key") {
			return nil, apperr.AlreadyExists("task already exists")
		}
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// DeleteTask removes a task under the ownership predicate, reporting
// whether the scoped lookup hit.
func (s *PostgresStore) DeleteTask(ctx context.Context, id, userID string) (bool, error) {
	tag, err := s.pool.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
