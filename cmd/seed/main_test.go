package main

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	mockUC "foodlog/internal/mocks/usecase"
	"foodlog/internal/usecase"
)

func TestLoadCatalog_EmbeddedCatalog(t *testing.T) {
	items, err := loadCatalog(catalogYAML)
	require.NoError(t, err)
	require.NotEmpty(t, items)

	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.UnitLabel, item.Name)
		assert.Greater(t, item.CaloriesPerUnit, 0.0, item.Name)

		key := strings.ToLower(item.Name)
		_, dup := seen[key]
		assert.False(t, dup, "duplicate catalog name %q", item.Name)
		seen[key] = struct{}{}
	}

	assert.Equal(t, usecase.CreateFoodInput{Name: "Manzana", UnitLabel: "unidad (150 g)", CaloriesPerUnit: 80}, items[0])
}

func TestLoadCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{name: "empty", doc: "foods: []\n"},
		{name: "unknown key", doc: "foods:\n  - name: Pan\n    calories: 80\n"},
		{name: "not yaml", doc: "foods: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadCatalog([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestRunSeed(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	t.Run("seeds the embedded catalog", func(t *testing.T) {
		foodUC := mockUC.NewMockFoodUsecase(t)
		foodUC.EXPECT().
			SeedCatalog(ctx, mock.AnythingOfType("[]usecase.CreateFoodInput")).
			Return(&usecase.SeedResult{Inserted: 3, Skipped: 1}, nil)

		require.NoError(t, runSeed(ctx, foodUC, logger))
	})

	t.Run("propagates failures", func(t *testing.T) {
		foodUC := mockUC.NewMockFoodUsecase(t)
		foodUC.EXPECT().SeedCatalog(ctx, mock.Anything).Return(nil, errors.New("database unavailable"))

		assert.EqualError(t, runSeed(ctx, foodUC, logger), "database unavailable")
	})
}
