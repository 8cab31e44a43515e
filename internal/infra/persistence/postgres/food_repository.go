package postgres

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodlog/internal/domain/entity"
	domainerrors "foodlog/internal/domain/errors"
	"foodlog/internal/domain/repository"
	"foodlog/internal/infra/persistence/model"
)

type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository is the constructor for the GORM-backed food catalog.
func NewFoodRepository(db *gorm.DB) repository.FoodRepository {
	return &foodRepository{db: db}
}

func (repo *foodRepository) FindByID(ctx context.Context, id int64) (*entity.Food, error) {
	var foodM model.FoodModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Take(&foodM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFoodNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find food by id")
	}

	return toFoodDomain(&foodM), nil
}

// List filters with ILIKE so the query is matched case-insensitively anywhere in the name.
func (repo *foodRepository) List(ctx context.Context, query string) ([]*entity.Food, error) {
	tx := repo.db.WithContext(ctx).Order("created_at DESC").Order("id DESC")
	if query = strings.TrimSpace(query); query != "" {
		tx = tx.Where("name ILIKE ?", "%"+escapeLike(query)+"%")
	}

	var foodMs []*model.FoodModel
	if err := tx.Find(&foodMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list foods")
	}

	foods := make([]*entity.Food, 0, len(foodMs))
	for _, foodM := range foodMs {
		foods = append(foods, toFoodDomain(foodM))
	}

	return foods, nil
}

func (repo *foodRepository) ExistingNames(ctx context.Context, names []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{}, len(names))
	if len(names) == 0 {
		return existing, nil
	}

	lowered := make([]string, 0, len(names))
	for _, name := range names {
		lowered = append(lowered, strings.ToLower(name))
	}

	var found []string
	err := repo.db.WithContext(ctx).
		Model(&model.FoodModel{}).
		Where("LOWER(name) IN ?", lowered).
		Pluck("LOWER(name)", &found).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to look up food names")
	}

	for _, name := range found {
		existing[name] = struct{}{}
	}

	return existing, nil
}

func (repo *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	foodM := fromFoodDomain(food)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(foodM).Error; err != nil {
		return translateWriteError(err, "failed to create food")
	}

	food.ID = foodM.ID
	food.CreatedAt = foodM.CreatedAt

	return nil
}

// CreateIfAbsent relies on ON CONFLICT DO NOTHING, which covers the expression index on LOWER(name)
// and leaves an enclosing transaction usable.
func (repo *foodRepository) CreateIfAbsent(ctx context.Context, food *entity.Food) (bool, error) {
	foodM := fromFoodDomain(food)
	result := repo.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(foodM)
	if result.Error != nil {
		return false, translateWriteError(result.Error, "failed to seed food")
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	food.ID = foodM.ID
	food.CreatedAt = foodM.CreatedAt

	return true, nil
}

// escapeLike makes LIKE wildcards in user input match literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func toFoodDomain(data *model.FoodModel) *entity.Food {
	if data == nil {
		return nil
	}

	return &entity.Food{
		ID:              data.ID,
		Name:            data.Name,
		UnitLabel:       data.UnitLabel,
		CaloriesPerUnit: data.CaloriesPerUnit,
		CreatedByUserID: data.CreatedByUserID,
		CreatedAt:       data.CreatedAt,
	}
}

func fromFoodDomain(data *entity.Food) *model.FoodModel {
	if data == nil {
		return nil
	}

	return &model.FoodModel{
		ID:              data.ID,
		Name:            data.Name,
		UnitLabel:       data.UnitLabel,
		CaloriesPerUnit: data.CaloriesPerUnit,
		CreatedByUserID: data.CreatedByUserID,
		CreatedAt:       data.CreatedAt,
	}
}
