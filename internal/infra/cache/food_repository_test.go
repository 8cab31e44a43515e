package cache

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodlog/internal/domain/entity"
	"foodlog/internal/domain/repository"
	mockRepo "foodlog/internal/mocks/repository"
)

type fakeStore struct {
	values  map[string][]byte
	getErr  error
	setErr  error
	setTTLs map[string]time.Duration
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: map[string][]byte{}, setTTLs: map[string]time.Duration{}}
}

func (s *fakeStore) Get(_ context.Context, key string) *redis.StringCmd {
	if s.getErr != nil {
		return redis.NewStringResult("", s.getErr)
	}
	value, ok := s.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(string(value), nil)
}

func (s *fakeStore) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	if s.setErr != nil {
		return redis.NewStatusResult("", s.setErr)
	}
	s.values[key] = value.([]byte)
	s.setTTLs[key] = expiration

	return redis.NewStatusResult("OK", nil)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFoodRepository_ReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := mockRepo.NewMockFoodRepository(t)
	store := newFakeStore()
	repo := newFoodRepository(inner, store, time.Minute, discardLogger())

	food := &entity.Food{ID: 3, Name: "Manzana", UnitLabel: "unidad", CaloriesPerUnit: 95, CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)}
	inner.EXPECT().FindByID(ctx, int64(3)).Return(food, nil).Once()

	first, err := repo.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, food, first)
	assert.Equal(t, time.Minute, store.setTTLs["foodlog:food:3"])

	second, err := repo.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, food.Name, second.Name)
	assert.True(t, food.CreatedAt.Equal(second.CreatedAt))
}

func TestFoodRepository_NotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	inner := mockRepo.NewMockFoodRepository(t)
	store := newFakeStore()
	repo := newFoodRepository(inner, store, time.Minute, discardLogger())

	inner.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrFoodNotFound).Twice()

	for range 2 {
		_, err := repo.FindByID(ctx, 9)
		assert.ErrorIs(t, err, repository.ErrFoodNotFound)
	}
	assert.Empty(t, store.values)
}

func TestFoodRepository_CacheFailuresFallThrough(t *testing.T) {
	ctx := context.Background()
	inner := mockRepo.NewMockFoodRepository(t)
	store := newFakeStore()
	store.getErr = errors.New("connection refused")
	store.setErr = errors.New("connection refused")
	repo := newFoodRepository(inner, store, time.Minute, discardLogger())

	food := &entity.Food{ID: 1, Name: "Arroz"}
	inner.EXPECT().FindByID(ctx, int64(1)).Return(food, nil)

	got, err := repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, food, got)
}

func TestFoodRepository_CorruptEntryIsReplaced(t *testing.T) {
	ctx := context.Background()
	inner := mockRepo.NewMockFoodRepository(t)
	store := newFakeStore()
	store.values["foodlog:food:5"] = []byte("{not json")
	repo := newFoodRepository(inner, store, time.Minute, discardLogger())

	food := &entity.Food{ID: 5, Name: "Pan"}
	inner.EXPECT().FindByID(ctx, int64(5)).Return(food, nil)

	got, err := repo.FindByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Pan", got.Name)

	var cached cachedFood
	require.NoError(t, json.Unmarshal(store.values["foodlog:food:5"], &cached))
	assert.Equal(t, "Pan", cached.Name)
}

func TestFoodRepository_OtherMethodsDelegate(t *testing.T) {
	ctx := context.Background()
	inner := mockRepo.NewMockFoodRepository(t)
	repo := newFoodRepository(inner, newFakeStore(), time.Minute, discardLogger())

	inner.EXPECT().List(ctx, "arr").Return([]*entity.Food{{ID: 1}}, nil)

	foods, err := repo.List(ctx, "arr")
	require.NoError(t, err)
	assert.Len(t, foods, 1)
}

func TestNewFoodRepository_NilClientReturnsInner(t *testing.T) {
	inner := mockRepo.NewMockFoodRepository(t)

	assert.Same(t, inner, NewFoodRepository(inner, nil, time.Minute, discardLogger()))
}
