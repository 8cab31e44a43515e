package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "foodlog/internal/delivery/context"
	"foodlog/internal/domain/entity"
	domainerrors "foodlog/internal/domain/errors"
	"foodlog/internal/domain/repository"
	"foodlog/internal/usecase"
	"foodlog/internal/validation"
)

type foodService struct {
	txManager repository.TransactionManager
	foodRepo  repository.FoodRepository
	validator *validation.Validator
	logger    *slog.Logger
}

// FoodServiceParams holds dependencies for FoodService, injected by Fx.
type FoodServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	FoodRepo  repository.FoodRepository
	Logger    *slog.Logger
}

// NewFoodService creates the food catalog service.
func NewFoodService(params FoodServiceParams) usecase.FoodUsecase {
	return &foodService{
		txManager: params.TxManager,
		foodRepo:  params.FoodRepo,
		validator: validation.New(),
		logger:    params.Logger,
	}
}

func (srv *foodService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *foodService) CreateFood(ctx context.Context, input usecase.CreateFoodInput) (*entity.Food, error) {
	food, err := srv.newFood(input)
	if err != nil {
		return nil, err
	}

	if err := srv.foodRepo.Create(ctx, food); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, domainerrors.ErrFoodAlreadyExists
		case errors.Is(err, repository.ErrReferenceNotFound):
			return nil, domainerrors.ErrReferenceNotFound.WithDetails("created_by_user_id does not exist")
		default:
			return nil, errors.Wrap(err, "failed to create food")
		}
	}

	srv.log(ctx).Info("Food created", slog.Int64("foodID", food.ID), slog.String("name", food.Name))

	return food, nil
}

func (srv *foodService) ListFoods(ctx context.Context, query string) ([]*entity.Food, error) {
	foods, err := srv.foodRepo.List(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list foods")
	}

	return foods, nil
}

func (srv *foodService) GetFood(ctx context.Context, id int64) (*entity.Food, error) {
	food, err := srv.foodRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrFoodNotFound) {
		return nil, domainerrors.ErrFoodNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find food")
	}

	return food, nil
}

// SeedCatalog inserts missing catalog items in one transaction. Items already cataloged,
// repeated within items, or inserted concurrently by someone else count as skipped.
func (srv *foodService) SeedCatalog(ctx context.Context, items []usecase.CreateFoodInput) (*usecase.SeedResult, error) {
	foods := make([]*entity.Food, 0, len(items))
	names := make([]string, 0, len(items))
	for i, item := range items {
		food, err := srv.newFood(item)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog item %d", i)
		}
		foods = append(foods, food)
		names = append(names, food.Name)
	}

	result := &usecase.SeedResult{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foodRepo := repoFactory.NewFoodRepository()

		existing, err := foodRepo.ExistingNames(ctx, names)
		if err != nil {
			return errors.Wrap(err, "failed to look up existing foods")
		}

		for _, food := range foods {
			key := strings.ToLower(food.Name)
			if _, ok := existing[key]; ok {
				result.Skipped++

				continue
			}

			inserted, err := foodRepo.CreateIfAbsent(ctx, food)
			if err != nil {
				return errors.Wrapf(err, "failed to seed %q", food.Name)
			}
			if inserted {
				result.Inserted++
			} else {
				result.Skipped++
			}
			existing[key] = struct{}{}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Food catalog seeded", slog.Int("inserted", result.Inserted), slog.Int("skipped", result.Skipped))

	return result, nil
}

func (srv *foodService) newFood(input usecase.CreateFoodInput) (*entity.Food, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.UnitLabel = strings.TrimSpace(input.UnitLabel)

	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}
	if input.UnitLabel == "" {
		input.UnitLabel = entity.DefaultUnitLabel
	}

	return &entity.Food{
		Name:            input.Name,
		UnitLabel:       input.UnitLabel,
		CaloriesPerUnit: input.CaloriesPerUnit,
		CreatedByUserID: input.CreatedByUserID,
	}, nil
}
