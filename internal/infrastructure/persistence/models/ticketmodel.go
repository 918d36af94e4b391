package models

import "time"

// TicketModel represents the database persistence model for tickets.
type TicketModel struct {
	ID           uint   `gorm:"primarykey"`
	Title        string `gorm:"not null;size:255"`
	Description  string `gorm:"not null;type:text"`
	Category     string `gorm:"not null;size:50"`
	Priority     string `gorm:"not null;size:20"`
	Status       string `gorm:"not null;default:Open;size:20"`
	AdminComment *string
	UserID       uint      `gorm:"index;not null"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName specifies the table name for GORM
func (TicketModel) TableName() string {
	return "tickets"
}
