// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"foodlog/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
// Values are normalized (trimmed, email lower-cased) before the rules apply.
type RegisterInput struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required"`
	Password string `validate:"required,min=6"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// UserUsecase defines the interface for user-related business operations.
// Every returned user is the public projection; credentials never leave the service.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*entity.PublicUser, error)
	Login(ctx context.Context, input LoginInput) (*entity.PublicUser, error)
	GetUser(ctx context.Context, id int64) (*entity.PublicUser, error)
	ListUsers(ctx context.Context) ([]*entity.PublicUser, error)
}
