// Package model holds the GORM persistence models. They are exported so the GORM Gen tool can use them.
package model

import "time"

// UserModel mirrors the 'users' table. Uniqueness of username and email is enforced on lower() by the migrations.
type UserModel struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"type:text;not null"`
	Email        string    `gorm:"type:text;not null"`
	PasswordHash string    `gorm:"column:password_hash;type:text;not null"`
	CreatedAt    time.Time `gorm:"not null;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
