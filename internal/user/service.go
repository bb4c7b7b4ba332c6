package user

import (
	"context"
	"fmt"

	"github.com/adeyemi/task-manager-api/internal/apperr"
	"github.com/adeyemi/task-manager-api/internal/auth"
	"github.com/adeyemi/task-manager-api/internal/models"
)

// Store defines the user persistence this service depends on.
// CreateUser must atomically provision the default task category.
type Store interface {
	CreateUser(ctx context.Context, name, email, hashedPassword string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// Service implements registration, login, and profile lookup.
type Service struct {
	store  Store
	tokens *auth.TokenService
}

func NewService(store Store, tokens *auth.TokenService) *Service {
	return &Service{store: store, tokens: tokens}
}

// Register creates an account and its default task category.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	existing, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists(fmt.Sprintf("user with email %s already exists", req.Email))
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// A concurrent duplicate that slips past the pre-check is caught
	// by the store's unique email constraint.
	return s.store.CreateUser(ctx, req.Name, req.Email, hashed)
}

// Login verifies credentials and issues a session token. Unknown email
// and wrong password surface identically.
func (s *Service) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := s.store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.VerifyPassword(req.Password, user.Password) {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &models.LoginResponse{Token: token, User: user}, nil
}

// GetUserByID returns (nil, nil) when absent so the auth gate can map
// a stale token onto a uniform unauthorized rejection.
func (s *Service) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.store.GetUserByID(ctx, id)
}
