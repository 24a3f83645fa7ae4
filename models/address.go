package models

import "time"

type Address struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	Nickname      string    `json:"nickname"` // e.g. "home", "work"
	StreetAddress string    `gorm:"not null" json:"street_address"`
	City          string    `gorm:"not null" json:"city"`
	State         string    `gorm:"not null" json:"state"`
	Zip           string    `gorm:"not null" json:"zip"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
