package user

import (
	"context"

	"github.com/northavenue/dealership-backend/internal/apperr"
	"golang.org/x/crypto/bcrypt"
)

// Service defines the user account business logic.
type Service interface {
	// RegisterUser creates an employee account with a hashed password.
	RegisterUser(ctx context.Context, username, password, firstName, lastName string, role Role) (*User, error)

	// GetUser retrieves an account by username.
	GetUser(ctx context.Context, username string) (*User, error)
}

type service struct {
	repo Repository
}

// NewService creates a new user service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) RegisterUser(ctx context.Context, username, password, firstName, lastName string, role Role) (*User, error) {
	if role == RolePublic {
		return nil, apperr.Rejected("public is not an assignable role")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &User{
		Username:     username,
		PasswordHash: string(hash),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) GetUser(ctx context.Context, username string) (*User, error) {
	return s.repo.GetUserByUsername(ctx, username)
}
