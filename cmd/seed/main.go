package main

import (
	"context"
	"log/slog"

	"foodlog/config"
	logs "foodlog/internal/infra/log"
	"foodlog/internal/infra/persistence/postgres"
	"foodlog/internal/usecase"
	"foodlog/internal/usecase/impl"

	"go.uber.org/fx"
)

type seedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	FoodUC usecase.FoodUsecase
	Logger *slog.Logger
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewFoodRepository,
			postgres.NewTransactionManager,
			impl.NewFoodService,
		),
		fx.Invoke(
			seedCatalog,
		),
	).Run()
}

// seedCatalog runs once the database is reachable and migrated, then stops the application.
func seedCatalog(params seedParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				if err := runSeed(context.Background(), params.FoodUC, params.Logger); err != nil {
					params.Logger.Error("Failed to seed food catalog", slog.Any("error", err))
					exitCode = 1
				}
				_ = params.Shutdown(fx.ExitCode(exitCode))
			}()

			return nil
		},
	})
}

func runSeed(ctx context.Context, foodUC usecase.FoodUsecase, logger *slog.Logger) error {
	items, err := loadCatalog(catalogYAML)
	if err != nil {
		return err
	}

	result, err := foodUC.SeedCatalog(ctx, items)
	if err != nil {
		return err
	}

	logger.Info("Seed finished",
		slog.Int("catalogSize", len(items)),
		slog.Int("inserted", result.Inserted),
		slog.Int("skipped", result.Skipped),
	)

	return nil
}
