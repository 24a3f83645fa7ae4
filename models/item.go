package models

import "time"

type Item struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"` // the merchant who sells it
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Price       float64   `gorm:"not null" json:"price"`
	Inventory   int       `gorm:"not null" json:"inventory"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
