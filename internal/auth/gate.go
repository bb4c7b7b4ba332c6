package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/adeyemi/task-manager-api/internal/api"
	"github.com/adeyemi/task-manager-api/internal/apperr"
	"github.com/adeyemi/task-manager-api/internal/models"
)

// The same message covers missing tokens, bad tokens, and deleted
// accounts, so a response never reveals whether an account exists.
const unauthorizedMessage = "user not authorized"

// UserResolver resolves the account behind a verified token. It returns
// (nil, nil) when the user no longer exists.
type UserResolver interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Handler is an HTTP handler that receives the authenticated user as an
// explicit parameter rather than reading it from the request context.
type Handler func(w http.ResponseWriter, r *http.Request, user *models.User)

// Gate authenticates requests on protected routes: it extracts the
// bearer token, verifies it, and resolves the account before the
// wrapped handler runs. Identity enters a request here and nowhere
// else.
type Gate struct {
	tokens *TokenService
	users  UserResolver
}

func NewGate(tokens *TokenService, users UserResolver) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Require wraps next so it only runs for authenticated requests. Routes
// registered without Require are public.
func (g *Gate) Require(next Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			api.Fail(w, apperr.Unauthorized(unauthorizedMessage))
			return
		}

		claims, ok := g.tokens.Verify(token)
		if !ok {
			api.Fail(w, apperr.Unauthorized(unauthorizedMessage))
			return
		}

		user, err := g.users.GetUserByID(r.Context(), claims.UserID)
		if err != nil {
			api.Fail(w, err)
			return
		}
		if user == nil {
			api.Fail(w, apperr.Unauthorized(unauthorizedMessage))
			return
		}

		next(w, r, user)
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}
