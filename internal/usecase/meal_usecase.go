package usecase

import (
	"context"
	"time"

	"foodlog/internal/domain/entity"
)

// MealInput carries the fields of a meal entry for create and update.
// MealType accepts English and Spanish names; a nil EatenAt means "now" on create and "unchanged" on update.
type MealInput struct {
	UserID          int64  `validate:"required"`
	MealType        string `validate:"required"`
	EatenAt         *time.Time
	FoodID          *int64
	FoodName        string  `validate:"required"`
	Quantity        float64 `validate:"gt=0"`
	UnitLabel       string
	CaloriesPerUnit float64 `validate:"gt=0"`
}

// ListMealsInput narrows a meal listing. Nil fields are not filtered on.
type ListMealsInput struct {
	UserID *int64
	Day    *time.Time
}

// MealUsecase defines the meal log operations.
type MealUsecase interface {
	CreateMeal(ctx context.Context, input MealInput) (*entity.MealEntry, error)
	UpdateMeal(ctx context.Context, id int64, input MealInput) (*entity.MealEntry, error)
	DeleteMeal(ctx context.Context, id int64) error
	GetMeal(ctx context.Context, id int64) (*entity.MealEntry, error)
	ListMeals(ctx context.Context, input ListMealsInput) ([]*entity.MealEntry, error)
	DailyTotals(ctx context.Context, userID int64, day *time.Time) ([]*entity.DailyTotal, error)
}
