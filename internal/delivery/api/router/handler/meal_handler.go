package handler

import (
	"log/slog"
	"net/http"
	"time"

	"foodlog/internal/delivery/api/response"
	"foodlog/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MealHandlerParams holds dependencies for MealHandler, injected by Fx.
type MealHandlerParams struct {
	fx.In

	MealUC usecase.MealUsecase
	Logger *slog.Logger
}

// MealHandler serves the meal log.
type MealHandler struct {
	mealUC usecase.MealUsecase
	logger *slog.Logger
}

// NewMealHandler is the constructor for MealHandler
func NewMealHandler(params MealHandlerParams) *MealHandler {
	return &MealHandler{
		mealUC: params.MealUC,
		logger: params.Logger,
	}
}

// MealRequest represents the request body for creating or replacing a meal entry
type MealRequest struct {
	UserID          int64      `json:"user_id"`
	MealType        string     `json:"meal_type"`
	EatenAt         *time.Time `json:"eaten_at"`
	FoodID          *int64     `json:"food_id"`
	FoodName        string     `json:"food_name"`
	Quantity        float64    `json:"quantity"`
	UnitLabel       string     `json:"unit_label"`
	CaloriesPerUnit float64    `json:"calories_per_unit"`
}

func (req *MealRequest) input() usecase.MealInput {
	return usecase.MealInput{
		UserID:          req.UserID,
		MealType:        req.MealType,
		EatenAt:         req.EatenAt,
		FoodID:          req.FoodID,
		FoodName:        req.FoodName,
		Quantity:        req.Quantity,
		UnitLabel:       req.UnitLabel,
		CaloriesPerUnit: req.CaloriesPerUnit,
	}
}

// CreateMeal logs a meal entry
func (h *MealHandler) CreateMeal(c echo.Context) error {
	var req MealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}

	meal, err := h.mealUC.CreateMeal(c.Request().Context(), req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newMealView(meal))
}

// UpdateMeal replaces a meal entry
func (h *MealHandler) UpdateMeal(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	var req MealRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid meal input")
	}

	meal, err := h.mealUC.UpdateMeal(c.Request().Context(), id, req.input())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMealView(meal))
}

// DeleteMeal removes a meal entry
func (h *MealHandler) DeleteMeal(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	if err := h.mealUC.DeleteMeal(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"ok": true})
}

// GetMeal returns one meal entry
func (h *MealHandler) GetMeal(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", err.Error())
	}

	meal, err := h.mealUC.GetMeal(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMealView(meal))
}

// ListMeals returns meal entries filtered by the optional user_id and day query parameters
func (h *MealHandler) ListMeals(c echo.Context) error {
	userID, err := parseOptionalID(c, "user_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}
	day, err := parseOptionalDay(c, "day")
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	meals, err := h.mealUC.ListMeals(c.Request().Context(), usecase.ListMealsInput{UserID: userID, Day: day})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMealViews(meals))
}

// DailyTotals returns per-day calorie totals of one user
func (h *MealHandler) DailyTotals(c echo.Context) error {
	userID, err := parseOptionalID(c, "user_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}
	day, err := parseOptionalDay(c, "day")
	if err != nil {
		return response.BadRequest(c, "INVALID_QUERY", err.Error())
	}

	var id int64
	if userID != nil {
		id = *userID
	}

	totals, err := h.mealUC.DailyTotals(c.Request().Context(), id, day)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newDailyTotalViews(totals))
}
