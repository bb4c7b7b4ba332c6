package models

import (
	"strings"
	"time"

	"github.com/adeyemi/task-manager-api/internal/apperr"
)

// DefaultCategoryName is the category provisioned for every new user
// and resolved when a task is created without an explicit category.
const DefaultCategoryName = "default"

// TaskCategory groups a user's tasks under a label. (UserID, Name) is
// unique per user.
type TaskCategory struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CategoryRequest is the JSON body for creating or renaming a category.
type CategoryRequest struct {
	Name string `json:"name"`
}

func (r CategoryRequest) Validate() error {
	if r.Name == "" {
		return apperr.Validation(apperr.FieldError{Field: "name", Message: "name should not be empty"})
	}
	// "default" is reserved for system provisioning, in any casing.
	if strings.EqualFold(r.Name, DefaultCategoryName) {
		return apperr.Validation(apperr.FieldError{Field: "name", Message: "name is reserved"})
	}
	return nil
}

// CategoryFilter narrows a category listing. Name is a case-insensitive
// substring match.
type CategoryFilter struct {
	Name string
}
