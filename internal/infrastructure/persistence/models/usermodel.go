package models

import "time"

// UserModel represents the database persistence model for users.
// This is the anti-corruption layer between domain and database.
type UserModel struct {
	ID                  uint    `gorm:"primarykey"`
	Username            string  `gorm:"uniqueIndex;not null;size:30"`
	Email               string  `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash        string  `gorm:"not null;size:255"`
	Role                string  `gorm:"not null;default:user;size:20"`
	GoogleSub           *string `gorm:"uniqueIndex;size:255"`
	ResetTokenHash      *string `gorm:"index;size:64"`
	ResetTokenExpiresAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}
