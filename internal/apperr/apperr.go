// Package apperr defines the typed errors domain services raise and the
// HTTP boundary maps to status codes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for boundary mapping.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindUnauthorized
	KindAlreadyExists
	KindNotFound
)

// FieldError reports a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is a classified application error. Fields is populated only for
// validation failures.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Validation builds a 400-class error with per-field detail.
func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Bad Request", Fields: fields}
}

// Unauthorized builds a 401-class error.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// AlreadyExists builds a 400-class uniqueness-violation error.
func AlreadyExists(message string) *Error {
	return &Error{Kind: KindAlreadyExists, Message: message}
}

// NotFound builds a 404-class error for ownership-scoped lookup misses.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

// Internal wraps an unexpected failure. The wrapped error is logged
// server-side; callers only ever see the message.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "an unknown error occured", Err: err}
}

// From extracts the *Error from err, or classifies it as internal.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err)
}
