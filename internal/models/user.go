package models

import (
	"time"

	"github.com/adeyemi/task-manager-api/internal/apperr"
)

// User represents a row in the users table.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"` // never serialize
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LoginResponse is the payload for a successful POST /user/login.
type LoginResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// RegisterRequest is the JSON body for POST /user.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	var fields []apperr.FieldError
	if r.Name == "" {
		fields = append(fields, apperr.FieldError{Field: "name", Message: "name should not be empty"})
	}
	if r.Email == "" {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "email should not be empty"})
	}
	if r.Password == "" {
		fields = append(fields, apperr.FieldError{Field: "password", Message: "password should not be empty"})
	}
	if len(fields) > 0 {
		return apperr.Validation(fields...)
	}
	return nil
}

// LoginRequest is the JSON body for POST /user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var fields []apperr.FieldError
	if r.Email == "" {
		fields = append(fields, apperr.FieldError{Field: "email", Message: "email should not be empty"})
	}
	if r.Password == "" {
		fields = append(fields, apperr.FieldError{Field: "password", Message: "password should not be empty"})
	}
	if len(fields) > 0 {
		return apperr.Validation(fields...)
	}
	return nil
}
