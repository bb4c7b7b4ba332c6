package models

import (
	"time"

	"github.com/adeyemi/task-manager-api/internal/apperr"
	"github.com/google/uuid"
)

// Task is a unit of work owned by one user. (UserID, CategoryID, Title)
// is unique. Category carries the owning category's name for responses.
type Task struct {
	ID         string    `json:"id"`
	UserID     string    `json:"-"`
	CategoryID string    `json:"-"`
	Title      string    `json:"title"`
	Details    string    `json:"details"`
	Category   string    `json:"category"`
	Completed  bool      `json:"completed"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateTaskRequest is the JSON body for POST /task. CategoryID is
// optional; when empty the user's default category is used.
type CreateTaskRequest struct {
	CategoryID string `json:"categoryId"`
	Title      string `json:"title"`
	Details    string `json:"details"`
}

func (r CreateTaskRequest) Validate() error {
	var fields []apperr.FieldError
	if r.CategoryID != "" {
		if _, err := uuid.Parse(r.CategoryID); err != nil {
			fields = append(fields, apperr.FieldError{Field: "categoryId", Message: "categoryId must be a valid id"})
		}
	}
	if r.Title == "" {
		fields = append(fields, apperr.FieldError{Field: "title", Message: "title should not be empty"})
	}
	if r.Details == "" {
		fields = append(fields, apperr.FieldError{Field: "details", Message: "details should not be empty"})
	}
	if len(fields) > 0 {
		return apperr.Validation(fields...)
	}
	return nil
}

// UpdateTaskRequest is the JSON body for PATCH /task/{id}. Only supplied
// fields are overwritten.
type UpdateTaskRequest struct {
	Title     *string `json:"title"`
	Details   *string `json:"details"`
	Completed *bool   `json:"completed"`
}

func (r UpdateTaskRequest) Validate() error {
	var fields []apperr.FieldError
	if r.Title != nil && *r.Title == "" {
		fields = append(fields, apperr.FieldError{Field: "title", Message: "title should not be empty"})
	}
	if r.Details != nil && *r.Details == "" {
		fields = append(fields, apperr.FieldError{Field: "details", Message: "details should not be empty"})
	}
	if len(fields) > 0 {
		return apperr.Validation(fields...)
	}
	return nil
}

// TaskFilter narrows a task listing; all fields optional and
// conjunctive. Title is a case-insensitive substring match.
type TaskFilter struct {
	CategoryID string
	Title      string
	Completed  *bool
}
