package models

import (
	"github.com/google/uuid"
)

// SalonSettings is a single-row table holding the salon profile and
// working hours. Working hours are keyed by lowercase weekday name, each
// entry {"open": "09:00", "close": "20:00", "closed": false}.
type SalonSettings struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name         string    `json:"name"`
	Address      string    `json:"address"`
	WorkingHours JSONB     `gorm:"type:jsonb;default:'{}'" json:"workingHours"`

	SlotInterval int `gorm:"default:30" json:"slotInterval"` // minutes
}

// DefaultWorkingHours mirrors what the panel seeds on signup.
func DefaultWorkingHours() JSONB {
	return JSONB{
		"monday":    map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
		"tuesday":   map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
		"wednesday": map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
		"thursday":  map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
		"friday":    map[string]interface{}{"open": "09:00", "close": "20:00", "closed": false},
		"saturday":  map[string]interface{}{"open": "09:00", "close": "21:00", "closed": false},
		"sunday":    map[string]interface{}{"open": "10:00", "close": "19:00", "closed": true},
	}
}
