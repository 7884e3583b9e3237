package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Holiday is a salon-wide closure or a staff leave day. Days with a
// salon-wide holiday produce no availability slots.
type Holiday struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	User        string    `json:"user"` // staff member name, empty for salon-wide
	Date        time.Time `gorm:"type:date;index;not null" json:"date"`
	Description string    `json:"description"`

	gorm.Model `json:"-"`
}

func (h *Holiday) BeforeCreate(tx *gorm.DB) (err error) {
	h.ID = uuid.New()
	return
}
