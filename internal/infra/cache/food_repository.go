package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"foodlog/internal/domain/entity"
	"foodlog/internal/domain/repository"
)

const foodKeyPrefix = "foodlog:food:"

// store is the subset of the Redis client the decorator needs.
type store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// cachedFood is the JSON shape kept in Redis.
type cachedFood struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	UnitLabel       string    `json:"unit_label"`
	CaloriesPerUnit float64   `json:"calories_per_unit"`
	CreatedByUserID *int64    `json:"created_by_user_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// foodRepository caches FindByID. Foods are never updated or deleted, so entries only expire by TTL.
// Cache failures are logged and fall through to the wrapped repository.
type foodRepository struct {
	repository.FoodRepository

	store  store
	ttl    time.Duration
	logger *slog.Logger
}

// NewFoodRepository wraps next with a read-through cache. A nil client returns next unchanged.
func NewFoodRepository(next repository.FoodRepository, client *redis.Client, ttl time.Duration, logger *slog.Logger) repository.FoodRepository {
	if client == nil {
		return next
	}

	return newFoodRepository(next, client, ttl, logger)
}

func newFoodRepository(next repository.FoodRepository, s store, ttl time.Duration, logger *slog.Logger) *foodRepository {
	return &foodRepository{
		FoodRepository: next,
		store:          s,
		ttl:            ttl,
		logger:         logger,
	}
}

func (r *foodRepository) FindByID(ctx context.Context, id int64) (*entity.Food, error) {
	key := foodKeyPrefix + strconv.FormatInt(id, 10)

	raw, err := r.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var cached cachedFood
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return cached.toEntity(), nil
		}
		r.logger.WarnContext(ctx, "Discarding unreadable cached food", slog.String("key", key))
	case !errors.Is(err, redis.Nil):
		r.logger.WarnContext(ctx, "Food cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	food, err := r.FoodRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(fromEntity(food))
	if err != nil {
		return food, nil
	}
	if err := r.store.Set(ctx, key, payload, r.ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "Food cache write failed", slog.String("key", key), slog.Any("error", err))
	}

	return food, nil
}

func fromEntity(food *entity.Food) cachedFood {
	return cachedFood{
		ID:              food.ID,
		Name:            food.Name,
		UnitLabel:       food.UnitLabel,
		CaloriesPerUnit: food.CaloriesPerUnit,
		CreatedByUserID: food.CreatedByUserID,
		CreatedAt:       food.CreatedAt,
	}
}

func (c cachedFood) toEntity() *entity.Food {
	return &entity.Food{
		ID:              c.ID,
		Name:            c.Name,
		UnitLabel:       c.UnitLabel,
		CaloriesPerUnit: c.CaloriesPerUnit,
		CreatedByUserID: c.CreatedByUserID,
		CreatedAt:       c.CreatedAt,
	}
}
