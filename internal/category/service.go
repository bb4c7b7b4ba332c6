// Package category implements user-scoped CRUD for task categories.
package category

import (
	"context"

	"github.com/adeyemi/task-manager-api/internal/apperr"
	"github.com/adeyemi/task-manager-api/internal/models"
)

// Store defines the category persistence this service depends on.
// Scoped lookups return (nil, nil) when the id is absent or owned by a
// different user.
type Store interface {
	CreateCategory(ctx context.Context, userID, name string) (*models.TaskCategory, error)
	ListCategories(ctx context.Context, userID string, filter models.CategoryFilter) ([]models.TaskCategory, error)
	GetCategoryByID(ctx context.Context, id, userID string) (*models.TaskCategory, error)
	UpdateCategory(ctx context.Context, id, userID, name string) (*models.TaskCategory, error)
	DeleteCategory(ctx context.Context, id, userID string) (bool, error)
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, user *models.User, req models.CategoryRequest) (*models.TaskCategory, error) {
	return s.store.CreateCategory(ctx, user.ID, req.Name)
}

func (s *Service) List(ctx context.Context, user *models.User, filter models.CategoryFilter) ([]models.TaskCategory, error) {
	categories, err := s.store.ListCategories(ctx, user.ID, filter)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.TaskCategory{}
	}
	return categories, nil
}

func (s *Service) GetByID(ctx context.Context, id string, user *models.User) (*models.TaskCategory, error) {
	category, err := s.store.GetCategoryByID(ctx, id, user.ID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("task category not found")
	}
	return category, nil
}

func (s *Service) Update(ctx context.Context, id string, req models.CategoryRequest, user *models.User) (*models.TaskCategory, error) {
	category, err := s.store.UpdateCategory(ctx, id, user.ID, req.Name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("task category not found")
	}
	return category, nil
}

func (s *Service) Delete(ctx context.Context, id string, user *models.User) error {
	deleted, err := s.store.DeleteCategory(ctx, id, user.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("task category not found")
	}
	return nil
}
