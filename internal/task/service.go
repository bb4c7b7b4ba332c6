// Package task implements user-scoped CRUD for tasks.
package task

import (
	"context"

	"github.com/adeyemi/task-manager-api/internal/apperr"
	"github.com/adeyemi/task-manager-api/internal/models"
)

// Store defines the task persistence this service depends on. Scoped
// lookups return (nil, nil) when the id is absent or owned by a
// different user.
type Store interface {
	CreateTask(ctx context.Context, userID, categoryID, title, details string) (*models.Task, error)
	ListTasks(ctx context.Context, userID string, filter models.TaskFilter) ([]models.Task, error)
	GetTaskByID(ctx context.Context, id, userID string) (*models.Task, error)
	UpdateTask(ctx context.Context, id, userID string, patch models.UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, id, userID string) (bool, error)
	GetCategoryByID(ctx context.Context, id, userID string) (*models.TaskCategory, error)
	GetCategoryByName(ctx context.Context, userID, name string) (*models.TaskCategory, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Create persists a new, uncompleted task. An omitted category id
// resolves to the user's default category; a supplied one must belong
// to the user.
func (s *Service) Create(ctx context.Context, user *models.User, req models.CreateTaskRequest) (*models.Task, error) {
	var category *models.TaskCategory
	var err error
	if req.CategoryID == "" {
		category, err = s.store.GetCategoryByName(ctx, user.ID, models.DefaultCategoryName)
	} else {
		category, err = s.store.GetCategoryByID(ctx, req.CategoryID, user.ID)
	}
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.Validation(apperr.FieldError{
			Field:   "categoryId",
			Message: "category not found",
		})
	}

	return s.store.CreateTask(ctx, user.ID, category.ID, req.Title, req.Details)
}

func (s *Service) List(ctx context.Context, user *models.User, filter models.TaskFilter) ([]models.Task, error) {
	tasks, err := s.store.ListTasks(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (s *Service) GetByID(ctx context.Context, id string, user *models.User) (*models.Task, error) {
	task, err := s.store.GetTaskByID(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperr.NotFound("task not found")
	}
	return task, nil
}

func (s *Service) Update(ctx context.Context, id string, patch models.UpdateTaskRequest, user *models.User) (*models.Task, error) {
	task, err := s.store.UpdateTask(ctx, id, user.ID, patch)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, apperr.NotFound("task not found")
	}
	return task, nil
}

func (s *Service) Delete(ctx context.Context, id string, user *models.User) error {
	deleted, err := s.store.DeleteTask(ctx, id, user.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("task not found")
	}
	return nil
}
