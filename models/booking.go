package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking statuses. Transitions are not policed here: the admin panel only
// offers confirm from pending and complete from confirmed, but the server
// accepts any target status (the panel always shows cancel).
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

const (
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusPaid   = "paid"
)

type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key"`

	CustomerName  string `gorm:"not null"`
	CustomerPhone string
	CustomerEmail string
	Note          string
	Address       string

	AppointmentDate time.Time `gorm:"type:date;index;not null"`
	AppointmentTime string    `gorm:"not null"` // slot string, e.g. "10:30 AM"

	Total       float64 `gorm:"type:decimal(10,2);not null"`
	DepositPaid float64 `gorm:"type:decimal(10,2);default:0.0"`

	Status        string `gorm:"type:varchar(20);default:'pending'"`
	PaymentStatus string `gorm:"type:varchar(20);default:'unpaid'"`

	Items []BookingItem `gorm:"foreignKey:BookingID"`

	gorm.Model
}

func (b *Booking) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return
}

// BookingItem snapshots a service's name, price and duration at booking
// time, so later edits to the service don't rewrite past bookings.
type BookingItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	BookingID   uuid.UUID `gorm:"type:uuid;index;not null"`
	ServiceID   uuid.UUID `gorm:"type:uuid;index"`
	ServiceName string    `gorm:"not null"`
	Price       float64   `gorm:"type:decimal(10,2);not null"`
	Duration    int
}

func (i *BookingItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return
}
