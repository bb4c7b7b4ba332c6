package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adeyemi/task-manager-api/internal/models"
)

type fakeResolver struct {
	users map[string]*models.User
	err   error
}

func (f *fakeResolver) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func TestGateRejectsWithoutCredentials(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	valid, err := tokens.Issue("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	expiredSvc := NewTokenService("test-secret", -time.Hour)
	expired, err := expiredSvc.Issue("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	gate := NewGate(tokens, &fakeResolver{users: map[string]*models.User{
		"user-1": {ID: "user-1", Email: "a@x.com"},
	}})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc123"},
		{"bearer without token", "Bearer "},
		{"garbage token", "Bearer not-a-token"},
		{"expired token", "Bearer " + expired},
		{"valid token unknown user", "Bearer " + mustReissue(t, tokens, "ghost")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := gate.Require(func(w http.ResponseWriter, r *http.Request, u *models.User) {
				called = true
			})

			req := httptest.NewRequest(http.MethodGet, "/task", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if called {
				t.Fatal("handler must not run for a rejected request")
			}
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
			}
		})
	}

	// Sanity: the same gate admits the valid token.
	var got *models.User
	handler := gate.Require(func(w http.ResponseWriter, r *http.Request, u *models.User) {
		got = u
	})
	req := httptest.NewRequest(http.MethodGet, "/task", nil)
	req.Header.Set("Authorization", "Bearer "+valid)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if got == nil || got.ID != "user-1" {
		t.Fatalf("handler received user %+v, want user-1", got)
	}
}

func TestGateReportsResolverFailure(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	token, err := tokens.Issue("user-1", "a@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	gate := NewGate(tokens, &fakeResolver{err: errors.New("store down")})
	handler := gate.Require(func(w http.ResponseWriter, r *http.Request, u *models.User) {
		t.Fatal("handler must not run when the resolver fails")
	})

	req := httptest.NewRequest(http.MethodGet, "/task", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func mustReissue(t *testing.T, svc *TokenService, userID string) string {
	t.Helper()
	token, err := svc.Issue(userID, "ghost@x.com")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	return token
}
