package handler

import (
	"time"

	"foodlog/internal/domain/entity"
)

// dayLayout is the calendar-day format used in query strings and daily totals.
const dayLayout = "2006-01-02"

// UserView is the JSON form of a public user. It has no credential field.
type UserView struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// FoodView is the JSON form of a catalog item.
type FoodView struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	UnitLabel       string    `json:"unit_label"`
	CaloriesPerUnit float64   `json:"calories_per_unit"`
	CreatedByUserID *int64    `json:"created_by_user_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// MealView is the JSON form of a meal entry.
type MealView struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	MealType        string    `json:"meal_type"`
	EatenAt         time.Time `json:"eaten_at"`
	FoodID          *int64    `json:"food_id"`
	FoodName        string    `json:"food_name"`
	Quantity        float64   `json:"quantity"`
	UnitLabel       string    `json:"unit_label"`
	CaloriesPerUnit float64   `json:"calories_per_unit"`
	Calories        float64   `json:"calories"`
	CreatedAt       time.Time `json:"created_at"`
}

// DailyTotalView is the JSON form of one day's calorie total.
type DailyTotalView struct {
	UserID    int64   `json:"user_id"`
	Day       string  `json:"day"`
	TotalKcal float64 `json:"total_kcal"`
}

func newUserView(user *entity.PublicUser) *UserView {
	return &UserView{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func newUserViews(users []*entity.PublicUser) []*UserView {
	views := make([]*UserView, 0, len(users))
	for _, user := range users {
		views = append(views, newUserView(user))
	}

	return views
}

func newFoodView(food *entity.Food) *FoodView {
	return &FoodView{
		ID:              food.ID,
		Name:            food.Name,
		UnitLabel:       food.UnitLabel,
		CaloriesPerUnit: food.CaloriesPerUnit,
		CreatedByUserID: food.CreatedByUserID,
		CreatedAt:       food.CreatedAt,
	}
}

func newFoodViews(foods []*entity.Food) []*FoodView {
	views := make([]*FoodView, 0, len(foods))
	for _, food := range foods {
		views = append(views, newFoodView(food))
	}

	return views
}

func newMealView(meal *entity.MealEntry) *MealView {
	return &MealView{
		ID:              meal.ID,
		UserID:          meal.UserID,
		MealType:        meal.MealType.String(),
		EatenAt:         meal.EatenAt,
		FoodID:          meal.FoodID,
		FoodName:        meal.FoodName,
		Quantity:        meal.Quantity,
		UnitLabel:       meal.UnitLabel,
		CaloriesPerUnit: meal.CaloriesPerUnit,
		Calories:        meal.Calories(),
		CreatedAt:       meal.CreatedAt,
	}
}

func newMealViews(meals []*entity.MealEntry) []*MealView {
	views := make([]*MealView, 0, len(meals))
	for _, meal := range meals {
		views = append(views, newMealView(meal))
	}

	return views
}

func newDailyTotalViews(totals []*entity.DailyTotal) []*DailyTotalView {
	views := make([]*DailyTotalView, 0, len(totals))
	for _, total := range totals {
		views = append(views, &DailyTotalView{
			UserID:    total.UserID,
			Day:       total.Day.Format(dayLayout),
			TotalKcal: total.TotalKcal,
		})
	}

	return views
}
