package models

import (
	"github.com/google/uuid"
)

type Service struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Description string    `json:"description"`
	Price       float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Duration    int       `json:"duration"` // in minutes
	Category    string    `gorm:"default:'General'" json:"category"`
	IsActive    bool      `gorm:"default:true" json:"isActive"`

	BookingItems []BookingItem `gorm:"foreignKey:ServiceID" json:"-"`
}
