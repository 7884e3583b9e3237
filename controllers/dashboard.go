package controllers

import (
	"net/http"
	"salon-admin/config"
	"salon-admin/models"
	"salon-admin/utils"
	"time"

	"github.com/gin-gonic/gin"
)

// GetDashboardOverview computes the headline numbers the dashboard cards
// show. The panel also derives these client-side from its own collections;
// this endpoint serves integrations that want them without pulling every
// booking.
func GetDashboardOverview(c *gin.Context) {
	today := utils.BeginningOfDay(time.Now())

	var todaysBookings int64
	config.DB.Model(&models.Booking{}).
		Where("appointment_date = ?", today).
		Count(&todaysBookings)

	var revenue float64
	config.DB.Model(&models.Booking{}).
		Where("payment_status = ?", models.PaymentStatusPaid).
		Select("COALESCE(SUM(total), 0)").Scan(&revenue)

	var activeServices int64
	config.DB.Model(&models.Service{}).Count(&activeServices)

	var recent []models.Booking
	config.DB.Preload("Items").
		Order("created_at DESC").Limit(4).
		Find(&recent)

	recentResponses := make([]BookingResponse, 0, len(recent))
	for _, b := range recent {
		recentResponses = append(recentResponses, toBookingResponse(b))
	}

	c.JSON(http.StatusOK, gin.H{
		"todaysBookings": todaysBookings,
		"revenue":        revenue,
		"activeServices": activeServices,
		"recentBookings": recentResponses,
	})
}
