package repository

import (
	"context"
	"errors"

	"foodlog/internal/domain/entity"
)

// ErrFoodNotFound is returned when no food matches the lookup.
var ErrFoodNotFound = errors.New("food not found")

// FoodRepository defines persistence operations for the food catalog.
type FoodRepository interface {
	// FindByID retrieves a single food.
	FindByID(ctx context.Context, id int64) (*entity.Food, error)

	// List returns foods newest first. A non-empty query keeps only names containing it, ignoring case.
	List(ctx context.Context, query string) ([]*entity.Food, error)

	// ExistingNames returns the lower-cased names among the given ones that are already cataloged.
	ExistingNames(ctx context.Context, names []string) (map[string]struct{}, error)

	// Create persists a food. Duplicate names yield ErrDuplicateKey and unknown creators ErrReferenceNotFound.
	Create(ctx context.Context, food *entity.Food) error

	// CreateIfAbsent persists a food unless its name is already cataloged, reporting whether a row was inserted.
	// A concurrent insert of the same name is not an error.
	CreateIfAbsent(ctx context.Context, food *entity.Food) (bool, error)
}
