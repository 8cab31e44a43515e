package repository

import (
	"context"
	"errors"
	"time"

	"foodlog/internal/domain/entity"
)

// ErrMealNotFound is returned when no meal entry matches the lookup.
var ErrMealNotFound = errors.New("meal entry not found")

// MealFilter narrows meal listings. Zero values mean "no filter".
type MealFilter struct {
	UserID *int64
	Day    *time.Time // calendar day of eaten_at
}

// MealRepository defines persistence operations for meal entries and their daily aggregates.
type MealRepository interface {
	// FindByID retrieves a single entry.
	FindByID(ctx context.Context, id int64) (*entity.MealEntry, error)

	// List returns entries matching the filter ordered by eaten_at, newest first.
	List(ctx context.Context, filter MealFilter) ([]*entity.MealEntry, error)

	// Create persists an entry. A zero EatenAt is stored as the current time.
	// Unknown user or food references yield ErrReferenceNotFound.
	Create(ctx context.Context, meal *entity.MealEntry) error

	// Update overwrites the mutable fields of an existing entry, returning ErrMealNotFound when absent.
	Update(ctx context.Context, meal *entity.MealEntry) error

	// Delete removes an entry, returning ErrMealNotFound when nothing was removed.
	Delete(ctx context.Context, id int64) error

	// DailyTotals reads the per-day aggregate for a user, newest day first. A nil day returns every day.
	DailyTotals(ctx context.Context, userID int64, day *time.Time) ([]*entity.DailyTotal, error)
}
