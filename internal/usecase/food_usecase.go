package usecase

import (
	"context"

	"foodlog/internal/domain/entity"
)

// CreateFoodInput defines a new catalog item.
type CreateFoodInput struct {
	Name            string `validate:"required"`
	UnitLabel       string
	CaloriesPerUnit float64 `validate:"gt=0"`
	CreatedByUserID *int64
}

// SeedResult summarizes a catalog seeding run.
type SeedResult struct {
	Inserted int
	Skipped  int
}

// FoodUsecase defines the food catalog operations.
type FoodUsecase interface {
	CreateFood(ctx context.Context, input CreateFoodInput) (*entity.Food, error)
	ListFoods(ctx context.Context, query string) ([]*entity.Food, error)
	GetFood(ctx context.Context, id int64) (*entity.Food, error)

	// SeedCatalog inserts the items whose names are not cataloged yet, ignoring case.
	SeedCatalog(ctx context.Context, items []CreateFoodInput) (*SeedResult, error)
}
