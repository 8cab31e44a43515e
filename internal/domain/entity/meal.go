package entity

import "time"

// MealEntry is a single logged portion of food.
type MealEntry struct {
	ID              int64
	UserID          int64
	MealType        MealType
	EatenAt         time.Time
	FoodID          *int64 // optional link to the catalog; FoodName is always set
	FoodName        string
	Quantity        float64
	UnitLabel       string
	CaloriesPerUnit float64
	CreatedAt       time.Time
}

// Calories returns the energy of the entry in kcal.
func (m *MealEntry) Calories() float64 {
	return m.Quantity * m.CaloriesPerUnit
}

// DailyTotal is the aggregated energy a user logged on one calendar day.
type DailyTotal struct {
	UserID    int64
	Day       time.Time
	TotalKcal float64
}
