package api

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"foodlog/internal/domain/entity"
	domainerrors "foodlog/internal/domain/errors"
	"foodlog/internal/usecase"
)

func TestFoodRoutes_CreateFood(t *testing.T) {
	srv := newTestServer(t)
	creator := int64(3)
	createdAt := time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

	srv.foodUC.EXPECT().
		CreateFood(mock.Anything, usecase.CreateFoodInput{Name: "Manzana", UnitLabel: "unidad", CaloriesPerUnit: 95, CreatedByUserID: &creator}).
		Return(&entity.Food{ID: 7, Name: "Manzana", UnitLabel: "unidad", CaloriesPerUnit: 95, CreatedByUserID: &creator, CreatedAt: createdAt}, nil)

	rec := srv.do(t, http.MethodPost, "/api/foods",
		`{"name":"Manzana","unit_label":"unidad","calories_per_unit":95,"created_by_user_id":3}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.JSONEq(t,
		`{"id":7,"name":"Manzana","unit_label":"unidad","calories_per_unit":95,"created_by_user_id":3,"created_at":"2025-03-14T09:00:00Z"}`,
		string(decodeEnvelope(t, rec).Data))
}

func TestFoodRoutes_CreateFoodErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		ucErr    error
		wantCode int
		wantErr  string
	}{
		{name: "non-positive calories", body: `{"name":"Agua","calories_per_unit":0}`, wantCode: http.StatusBadRequest, wantErr: "VALIDATION_FAILED"},
		{name: "duplicate name", body: `{"name":"Manzana","calories_per_unit":95}`, ucErr: domainerrors.ErrFoodAlreadyExists, wantCode: http.StatusConflict, wantErr: "FOOD_ALREADY_EXISTS"},
		{name: "unknown creator", body: `{"name":"Pan","calories_per_unit":80,"created_by_user_id":99}`, ucErr: domainerrors.ErrReferenceNotFound.WithDetails("created_by_user_id does not exist"), wantCode: http.StatusBadRequest, wantErr: "REFERENCE_NOT_FOUND"},
		{name: "store failure", body: `{"name":"Pan","calories_per_unit":80}`, ucErr: errors.New("connection refused"), wantCode: http.StatusInternalServerError, wantErr: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			if tt.ucErr != nil {
				srv.foodUC.EXPECT().CreateFood(mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := srv.do(t, http.MethodPost, "/api/foods", tt.body)

			require.Equal(t, tt.wantCode, rec.Code)
			env := decodeEnvelope(t, rec)
			assert.Equal(t, tt.wantErr, env.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestFoodRoutes_ListFoodsPassesQuery(t *testing.T) {
	srv := newTestServer(t)
	srv.foodUC.EXPECT().
		ListFoods(mock.Anything, "arroz").
		Return([]*entity.Food{{ID: 1, Name: "Arroz blanco"}, {ID: 2, Name: "Arroz integral"}}, nil)

	rec := srv.do(t, http.MethodGet, "/api/foods?q=arroz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var foods []foodJSON
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &foods))
	require.Len(t, foods, 2)
	assert.Equal(t, "Arroz blanco", foods[0].Name)
}

func TestFoodRoutes_GetFood(t *testing.T) {
	srv := newTestServer(t)
	srv.foodUC.EXPECT().GetFood(mock.Anything, int64(1)).Return(&entity.Food{ID: 1, Name: "Huevo"}, nil)
	srv.foodUC.EXPECT().GetFood(mock.Anything, int64(2)).Return(nil, domainerrors.ErrFoodNotFound)

	assert.Equal(t, http.StatusOK, srv.do(t, http.MethodGet, "/api/foods/1", "").Code)
	assert.Equal(t, http.StatusNotFound, srv.do(t, http.MethodGet, "/api/foods/2", "").Code)
	assert.Equal(t, http.StatusBadRequest, srv.do(t, http.MethodGet, "/api/foods/0", "").Code)
}

// foodJSON mirrors the catalog item fields read back in tests.
type foodJSON struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
