package main

import (
	"context"
	"log/slog"
	"os"

	"foodlog/config"
	"foodlog/internal/delivery"
	"foodlog/internal/delivery/api"
	"foodlog/internal/delivery/api/router/handler"
	"foodlog/internal/domain/repository"
	"foodlog/internal/infra/auth"
	"foodlog/internal/infra/cache"
	logs "foodlog/internal/infra/log"
	"foodlog/internal/infra/persistence/postgres"
	"foodlog/internal/usecase/impl"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		cache.NewRedisClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			newFoodRepository,
			postgres.NewMealRepository,
			postgres.NewTransactionManager,
		),
	)
}

// newFoodRepository puts the Redis read-through cache in front of the catalog when Redis is configured.
func newFoodRepository(db *gorm.DB, client *redis.Client, cfg *config.Config, logger *slog.Logger) repository.FoodRepository {
	return cache.NewFoodRepository(postgres.NewFoodRepository(db), client, cfg.Redis.FoodTTL, logger)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewPBKDF2Codec,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewFoodService,
			impl.NewMealService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewFoodHandler,
			handler.NewMealHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
