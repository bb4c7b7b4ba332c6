// Package api implements the uniform response envelope and the mapping
// from typed application errors to HTTP status codes.
package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/adeyemi/task-manager-api/internal/apperr"
)

// Envelope is the wrapper returned by every endpoint.
type Envelope struct {
	Data       any                 `json:"data"`
	Message    string              `json:"message"`
	StatusCode int                 `json:"statusCode"`
	Errors     []apperr.FieldError `json:"errors,omitempty"`
}

// OK writes a success envelope with the given payload and message.
func OK(w http.ResponseWriter, data any, message string) {
	writeJSON(w, http.StatusOK, Envelope{
		Data:       data,
		Message:    message,
		StatusCode: http.StatusOK,
	})
}

// Fail maps err onto the envelope. Internal errors are logged with full
// detail and reported to the caller as an opaque message.
func Fail(w http.ResponseWriter, err error) {
	e := apperr.From(err)
	status := statusFor(e.Kind)
	if e.Kind == apperr.KindInternal {
		log.Printf("internal error: %v", e)
	}
	writeJSON(w, status, Envelope{
		Message:    e.Message,
		StatusCode: status,
		Errors:     e.Fields,
	})
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindAlreadyExists:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// DecodeBody parses a JSON request body into dst, reporting malformed
// input as a validation error.
func DecodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.Validation(apperr.FieldError{
			Field:   "body",
			Message: "invalid request body",
		})
	}
	return nil
}
