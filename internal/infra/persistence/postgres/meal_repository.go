package postgres

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"foodlog/internal/domain/entity"
	domainerrors "foodlog/internal/domain/errors"
	"foodlog/internal/domain/repository"
	"foodlog/internal/infra/persistence/model"
)

const dayLayout = "2006-01-02"

type mealRepository struct {
	db *gorm.DB
}

// NewMealRepository is the constructor for the GORM-backed meal log.
func NewMealRepository(db *gorm.DB) repository.MealRepository {
	return &mealRepository{db: db}
}

func (repo *mealRepository) FindByID(ctx context.Context, id int64) (*entity.MealEntry, error) {
	return repo.find(repo.db.WithContext(ctx), id)
}

func (repo *mealRepository) find(tx *gorm.DB, id int64) (*entity.MealEntry, error) {
	var mealM model.MealEntryModel
	if err := tx.Where("id = ?", id).Take(&mealM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMealNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find meal entry")
	}

	return toMealDomain(&mealM), nil
}

func (repo *mealRepository) List(ctx context.Context, filter repository.MealFilter) ([]*entity.MealEntry, error) {
	tx := repo.db.WithContext(ctx).Order("eaten_at DESC").Order("id DESC")
	if filter.UserID != nil {
		tx = tx.Where("user_id = ?", *filter.UserID)
	}
	if filter.Day != nil {
		tx = tx.Where("DATE(eaten_at) = ?", filter.Day.Format(dayLayout))
	}

	var mealMs []*model.MealEntryModel
	if err := tx.Find(&mealMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list meal entries")
	}

	meals := make([]*entity.MealEntry, 0, len(mealMs))
	for _, mealM := range mealMs {
		meals = append(meals, toMealDomain(mealM))
	}

	return meals, nil
}

// Create inserts the entry. A zero EatenAt is omitted so the column default NOW() applies.
func (repo *mealRepository) Create(ctx context.Context, meal *entity.MealEntry) error {
	mealM := fromMealDomain(meal)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(mealM).Error; err != nil {
		return translateWriteError(err, "failed to create meal entry")
	}

	meal.ID = mealM.ID
	meal.EatenAt = mealM.EatenAt
	meal.CreatedAt = mealM.CreatedAt

	return nil
}

// Update rewrites every mutable column; eaten_at only when a value is given.
// The row is read back from the primary so a lagging replica never serves the stale version.
func (repo *mealRepository) Update(ctx context.Context, meal *entity.MealEntry) error {
	updates := map[string]any{
		"user_id":           meal.UserID,
		"meal_type":         meal.MealType.String(),
		"food_id":           meal.FoodID,
		"food_name":         meal.FoodName,
		"quantity":          meal.Quantity,
		"unit_label":        meal.UnitLabel,
		"calories_per_unit": meal.CaloriesPerUnit,
	}
	if !meal.EatenAt.IsZero() {
		updates["eaten_at"] = meal.EatenAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.MealEntryModel{}).
		Where("id = ?", meal.ID).
		Updates(updates)
	if result.Error != nil {
		return translateWriteError(result.Error, "failed to update meal entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	stored, err := repo.find(repo.db.WithContext(ctx).Clauses(dbresolver.Write), meal.ID)
	if err != nil {
		return err
	}
	*meal = *stored

	return nil
}

func (repo *mealRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MealEntryModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete meal entry")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMealNotFound
	}

	return nil
}

// DailyTotals reads the daily_calorie_totals view.
func (repo *mealRepository) DailyTotals(ctx context.Context, userID int64, day *time.Time) ([]*entity.DailyTotal, error) {
	tx := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("day DESC")
	if day != nil {
		tx = tx.Where("day = ?", day.Format(dayLayout))
	}

	var rows []*model.DailyCalorieTotalModel
	if err := tx.Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to read daily totals")
	}

	totals := make([]*entity.DailyTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, &entity.DailyTotal{
			UserID:    row.UserID,
			Day:       row.Day,
			TotalKcal: row.TotalKcal,
		})
	}

	return totals, nil
}

func toMealDomain(data *model.MealEntryModel) *entity.MealEntry {
	if data == nil {
		return nil
	}

	return &entity.MealEntry{
		ID:              data.ID,
		UserID:          data.UserID,
		MealType:        entity.MealType(data.MealType),
		EatenAt:         data.EatenAt,
		FoodID:          data.FoodID,
		FoodName:        data.FoodName,
		Quantity:        data.Quantity,
		UnitLabel:       data.UnitLabel,
		CaloriesPerUnit: data.CaloriesPerUnit,
		CreatedAt:       data.CreatedAt,
	}
}

func fromMealDomain(data *entity.MealEntry) *model.MealEntryModel {
	if data == nil {
		return nil
	}

	return &model.MealEntryModel{
		ID:              data.ID,
		UserID:          data.UserID,
		MealType:        data.MealType.String(),
		EatenAt:         data.EatenAt,
		FoodID:          data.FoodID,
		FoodName:        data.FoodName,
		Quantity:        data.Quantity,
		UnitLabel:       data.UnitLabel,
		CaloriesPerUnit: data.CaloriesPerUnit,
		CreatedAt:       data.CreatedAt,
	}
}
