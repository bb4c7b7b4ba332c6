package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/adeyemi/task-manager-api/internal/apperr"
)

// URLParamID extracts the {id} route parameter and rejects values that
// are not well-formed ids.
func URLParamID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if err := ValidateID(id); err != nil {
		return "", apperr.Validation(apperr.FieldError{
			Field:   "id",
			Message: "id must be a valid id",
		})
	}
	return id, nil
}

// ValidateID reports whether raw is a well-formed entity id.
func ValidateID(raw string) error {
	_, err := uuid.Parse(raw)
	return err
}
