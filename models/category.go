package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups services by name. Services reference it by the name
// string rather than by ID, matching what the admin panel sends.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`

	gorm.Model `json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) (err error) {
	c.ID = uuid.New()
	return
}
