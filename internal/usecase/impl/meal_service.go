package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "foodlog/internal/delivery/context"
	"foodlog/internal/domain/entity"
	domainerrors "foodlog/internal/domain/errors"
	"foodlog/internal/domain/repository"
	"foodlog/internal/usecase"
	"foodlog/internal/validation"
)

const acceptedMealTypes = "breakfast|desayuno, lunch|almuerzo|comida, snack|merienda, dinner|cena"

type mealService struct {
	mealRepo  repository.MealRepository
	validator *validation.Validator
	logger    *slog.Logger
}

// MealServiceParams holds dependencies for MealService, injected by Fx.
type MealServiceParams struct {
	fx.In

	MealRepo repository.MealRepository
	Logger   *slog.Logger
}

// NewMealService creates the meal log service.
func NewMealService(params MealServiceParams) usecase.MealUsecase {
	return &mealService{
		mealRepo:  params.MealRepo,
		validator: validation.New(),
		logger:    params.Logger,
	}
}

func (srv *mealService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *mealService) CreateMeal(ctx context.Context, input usecase.MealInput) (*entity.MealEntry, error) {
	meal, err := srv.newMealEntry(input)
	if err != nil {
		return nil, err
	}

	if err := srv.mealRepo.Create(ctx, meal); err != nil {
		return nil, mapMealWriteError(err, "failed to create meal entry")
	}

	srv.log(ctx).Debug("Meal entry created", slog.Int64("mealID", meal.ID), slog.Int64("userID", meal.UserID))

	return meal, nil
}

// UpdateMeal replaces an entry's fields. eaten_at is kept when the input omits it.
func (srv *mealService) UpdateMeal(ctx context.Context, id int64, input usecase.MealInput) (*entity.MealEntry, error) {
	meal, err := srv.newMealEntry(input)
	if err != nil {
		return nil, err
	}
	meal.ID = id

	if err := srv.mealRepo.Update(ctx, meal); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return nil, domainerrors.ErrMealNotFound
		}

		return nil, mapMealWriteError(err, "failed to update meal entry")
	}

	return meal, nil
}

func (srv *mealService) DeleteMeal(ctx context.Context, id int64) error {
	if err := srv.mealRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMealNotFound) {
			return domainerrors.ErrMealNotFound
		}

		return errors.Wrap(err, "failed to delete meal entry")
	}

	return nil
}

func (srv *mealService) GetMeal(ctx context.Context, id int64) (*entity.MealEntry, error) {
	meal, err := srv.mealRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrMealNotFound) {
		return nil, domainerrors.ErrMealNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find meal entry")
	}

	return meal, nil
}

func (srv *mealService) ListMeals(ctx context.Context, input usecase.ListMealsInput) ([]*entity.MealEntry, error) {
	meals, err := srv.mealRepo.List(ctx, repository.MealFilter{
		UserID: input.UserID,
		Day:    input.Day,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list meal entries")
	}

	return meals, nil
}

func (srv *mealService) DailyTotals(ctx context.Context, userID int64, day *time.Time) ([]*entity.DailyTotal, error) {
	if userID == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("user_id is required")
	}

	totals, err := srv.mealRepo.DailyTotals(ctx, userID, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read daily totals")
	}

	return totals, nil
}

func (srv *mealService) newMealEntry(input usecase.MealInput) (*entity.MealEntry, error) {
	input.FoodName = strings.TrimSpace(input.FoodName)
	input.UnitLabel = strings.TrimSpace(input.UnitLabel)

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	mealType, ok := entity.ParseMealType(input.MealType)
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("meal_type must be one of " + acceptedMealTypes)
	}

	if input.UnitLabel == "" {
		input.UnitLabel = entity.DefaultUnitLabel
	}

	meal := &entity.MealEntry{
		UserID:          input.UserID,
		MealType:        mealType,
		FoodID:          input.FoodID,
		FoodName:        input.FoodName,
		Quantity:        input.Quantity,
		UnitLabel:       input.UnitLabel,
		CaloriesPerUnit: input.CaloriesPerUnit,
	}
	if input.EatenAt != nil {
		meal.EatenAt = *input.EatenAt
	}

	return meal, nil
}

func mapMealWriteError(err error, message string) error {
	if errors.Is(err, repository.ErrReferenceNotFound) {
		return domainerrors.ErrReferenceNotFound.WithDetails("user_id or food_id does not exist")
	}

	return errors.Wrap(err, message)
}
