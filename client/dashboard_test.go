package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevenueSkipsUnpaidAndUnparseable(t *testing.T) {
	bookings := []Booking{
		{Total: "50", PaymentStatus: "paid"},
		{Total: "30", PaymentStatus: "pending"},
		{Total: "x", PaymentStatus: "paid"},
	}

	assert.Equal(t, 50.0, Revenue(bookings))
}

func TestRevenueEmpty(t *testing.T) {
	assert.Equal(t, 0.0, Revenue(nil))
}

func TestTodaysBookingCount(t *testing.T) {
	bookings := []Booking{
		{AppointmentDate: "2026-08-30"},
		{AppointmentDate: "2026-08-30"},
		{AppointmentDate: "2026-08-31"},
	}

	assert.Equal(t, 2, TodaysBookingCount(bookings, "2026-08-30"))
	assert.Equal(t, 0, TodaysBookingCount(nil, "2026-08-30"))
}

func TestActiveServiceCount(t *testing.T) {
	assert.Equal(t, 0, ActiveServiceCount(nil))
	assert.Equal(t, 2, ActiveServiceCount([]Service{{ID: "s1"}, {ID: "s2"}}))
}
