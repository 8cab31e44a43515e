package model

import "time"

// FoodModel mirrors the 'foods' table.
type FoodModel struct {
	ID              int64      `gorm:"primaryKey;autoIncrement"`
	Name            string     `gorm:"type:text;not null"`
	UnitLabel       string     `gorm:"type:text;not null"`
	CaloriesPerUnit float64    `gorm:"type:numeric;not null"`
	CreatedByUserID *int64     `gorm:"column:created_by_user_id"`
	CreatedBy       *UserModel `gorm:"foreignKey:CreatedByUserID"`
	CreatedAt       time.Time  `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (FoodModel) TableName() string {
	return "foods"
}
