// controllers/availability.go
package controllers

import (
	"net/http"
	"salon-admin/config"
	"salon-admin/models"
	"salon-admin/utils"

	"github.com/gin-gonic/gin"
)

// GetAvailability returns the open time slots for a date as a flat array
// of slot strings. The grid comes from the salon's working hours for that
// weekday, minus slots already taken by non-cancelled bookings. A salon-wide
// holiday empties the day.
func GetAvailability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	date, err := utils.ParseDate(dateStr)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	var holidayCount int64
	if err := config.DB.Model(&models.Holiday{}).
		Where("date = ? AND \"user\" = ''", date).
		Count(&holidayCount).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if holidayCount > 0 {
		c.JSON(http.StatusOK, []string{})
		return
	}

	var settings models.SalonSettings
	if err := config.DB.First(&settings).Error; err != nil {
		settings.WorkingHours = models.DefaultWorkingHours()
		settings.SlotInterval = 30
	}

	grid := slotsForDay(settings, utils.WeekdayKey(date))
	if len(grid) == 0 {
		c.JSON(http.StatusOK, []string{})
		return
	}

	var taken []string
	if err := config.DB.Model(&models.Booking{}).
		Where("appointment_date = ? AND status <> ?", date, models.BookingStatusCancelled).
		Pluck("appointment_time", &taken).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	takenSet := make(map[string]bool, len(taken))
	for _, t := range taken {
		takenSet[t] = true
	}

	open := make([]string, 0, len(grid))
	for _, slot := range grid {
		if !takenSet[slot] {
			open = append(open, slot)
		}
	}

	c.JSON(http.StatusOK, open)
}

func slotsForDay(settings models.SalonSettings, weekday string) []string {
	hours, ok := settings.WorkingHours[weekday].(map[string]interface{})
	if !ok {
		return nil
	}
	if closed, _ := hours["closed"].(bool); closed {
		return nil
	}
	open, _ := hours["open"].(string)
	close, _ := hours["close"].(string)

	interval := settings.SlotInterval
	if interval <= 0 {
		interval = 30
	}
	return utils.BuildSlots(open, close, interval)
}
