// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodlog/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler *handler.UserHandler
	FoodHandler *handler.FoodHandler
	MealHandler *handler.MealHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler *handler.UserHandler
	foodHandler *handler.FoodHandler
	mealHandler *handler.MealHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler: params.UserHandler,
		foodHandler: params.FoodHandler,
		mealHandler: params.MealHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", handler.HealthCheck)

	usersGroup := api.Group("/users")
	{
		usersGroup.GET("", r.userHandler.ListUsers)
		usersGroup.POST("", r.userHandler.Register)
		usersGroup.POST("/login", r.userHandler.Login)
		usersGroup.GET("/:id", r.userHandler.GetUser)
	}

	foodsGroup := api.Group("/foods")
	{
		foodsGroup.GET("", r.foodHandler.ListFoods)
		foodsGroup.POST("", r.foodHandler.CreateFood)
		foodsGroup.GET("/:id", r.foodHandler.GetFood)
	}

	mealsGroup := api.Group("/meals")
	{
		mealsGroup.GET("", r.mealHandler.ListMeals)
		mealsGroup.POST("", r.mealHandler.CreateMeal)
		// static segment registered ahead of the :id routes
		mealsGroup.GET("/daily-totals", r.mealHandler.DailyTotals)
		mealsGroup.GET("/:id", r.mealHandler.GetMeal)
		mealsGroup.PUT("/:id", r.mealHandler.UpdateMeal)
		mealsGroup.DELETE("/:id", r.mealHandler.DeleteMeal)
	}
}
