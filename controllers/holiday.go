// controllers/holiday.go
package controllers

import (
	"net/http"
	"salon-admin/config"
	"salon-admin/models"
	"salon-admin/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type HolidayInput struct {
	User        string `json:"user"`
	Date        string `json:"date" binding:"required"`
	Description string `json:"description"`
}

// CreateHoliday records a leave day. An empty user marks a salon-wide
// closure, which blanks that date's availability.
func CreateHoliday(c *gin.Context) {
	var input HolidayInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid date, expected YYYY-MM-DD")
		return
	}

	holiday := models.Holiday{
		User:        input.User,
		Date:        date,
		Description: input.Description,
	}

	if err := config.DB.Create(&holiday).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create leave")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"leave": holiday})
}

// GetHolidays lists recorded leave days, soonest first.
func GetHolidays(c *gin.Context) {
	var holidays []models.Holiday
	if err := config.DB.Order("date").Find(&holidays).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve leaves")
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaves": holidays})
}

// DeleteHoliday removes a leave day.
func DeleteHoliday(c *gin.Context) {
	holidayUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid leave ID format")
		return
	}

	result := config.DB.Delete(&models.Holiday{}, "id = ?", holidayUUID)

	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete leave")
		return
	}

	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Leave not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Leave deleted successfully"})
}
