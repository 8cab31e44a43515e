package model

import "time"

// MealEntryModel mirrors the 'meal_entries' table.
type MealEntryModel struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	UserID          int64      `gorm:"not null;index"`
	User            *UserModel `gorm:"foreignKey:UserID"`
	MealType        string     `gorm:"type:text;not null"`
	EatenAt         time.Time  `gorm:"not null;default:now()"`
	FoodID          *int64
	Food            *FoodModel `gorm:"foreignKey:FoodID"`
	FoodName        string     `gorm:"type:text;not null"`
	Quantity        float64    `gorm:"type:numeric;not null"`
	UnitLabel       string     `gorm:"type:text;not null"`
	CaloriesPerUnit float64    `gorm:"type:numeric;not null"`
	CreatedAt       time.Time  `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (MealEntryModel) TableName() string {
	return "meal_entries"
}

// DailyCalorieTotalModel mirrors the read-only 'daily_calorie_totals' view.
type DailyCalorieTotalModel struct {
	UserID    int64
	Day       time.Time `gorm:"type:date"`
	TotalKcal float64
}

// TableName explicitly sets the view name for GORM.
func (DailyCalorieTotalModel) TableName() string {
	return "daily_calorie_totals"
}
