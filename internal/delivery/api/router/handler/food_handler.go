package handler

import (
	"log/slog"
	"net/http"

	"foodlog/internal/delivery/api/response"
	"foodlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FoodHandlerParams holds dependencies for FoodHandler, injected by Fx.
type FoodHandlerParams struct {
	fx.In

	FoodUC usecase.FoodUsecase
	Logger *slog.Logger
}

// FoodHandler serves the food catalog.
type FoodHandler struct {
	foodUC usecase.FoodUsecase
	logger *slog.Logger
}

// NewFoodHandler is the constructor for FoodHandler
func NewFoodHandler(params FoodHandlerParams) *FoodHandler {
	return &FoodHandler{
		foodUC: params.FoodUC,
		logger: params.Logger,
	}
}

// CreateFoodRequest represents the request body for adding a catalog item
type CreateFoodRequest struct {
	Name            string  `json:"name" validate:"required"`
	UnitLabel       string  `json:"unit_label"`
	CaloriesPerUnit float64 `json:"calories_per_unit" validate:"gt=0"`
	CreatedByUserID *int64  `json:"created_by_user_id"`
}

// CreateFood adds an item to the catalog
func (h *FoodHandler) CreateFood(c echo.Context) error {
	var req CreateFoodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid food input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	food, err := h.foodUC.CreateFood(c.Request().Context(), usecase.CreateFoodInput{
		Name:            req.Name,
		UnitLabel:       req.UnitLabel,
		CaloriesPerUnit: req.CaloriesPerUnit,
		CreatedByUserID: req.CreatedByUserID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newFoodView(food))
}

// ListFoods returns the catalog, optionally filtered by the q substring
func (h *FoodHandler) ListFoods(c echo.Context) error {
	foods, err := h.foodUC.ListFoods(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFoodViews(foods))
}

// GetFood returns one catalog item
func (h *FoodHandler) GetFood(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	food, err := h.foodUC.GetFood(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newFoodView(food))
}
