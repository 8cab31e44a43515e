// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"foodlog/internal/domain/entity"
)

var (
	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateKey is returned when a write violates a uniqueness constraint.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrReferenceNotFound is returned when a write references a row that does not exist.
	ErrReferenceNotFound = errors.New("referenced record not found")
)

// UserRepository defines the standard operations for user persistence.
// Users are append-only; there is no update or delete.
type UserRepository interface {
	// FindByID retrieves a single user by its store-assigned ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a user whose username equals the given one, ignoring case.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// ExistsByUsernameOrEmail reports whether any user has the username or the email, ignoring case.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// Create persists a new user and fills in ID and CreatedAt.
	// A uniqueness violation is reported as ErrDuplicateKey.
	Create(ctx context.Context, user *entity.User) error

	// List returns all users, newest first.
	List(ctx context.Context) ([]*entity.User, error)
}
