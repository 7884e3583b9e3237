// controllers/booking.go
package controllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"salon-admin/config"
	"salon-admin/models"
	"salon-admin/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CustomerDetails is the nested customer object the panel renders.
type CustomerDetails struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// BookingServiceInput carries the panel's snapshot of a selected service.
type BookingServiceInput struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name" binding:"required"`
	Price    float64   `json:"price" binding:"min=0"`
	Duration int       `json:"duration" binding:"min=0"`
}

// ManualBookingInput is the body of POST /api/bookings/manual.
type ManualBookingInput struct {
	CustomerDetails CustomerDetails       `json:"customerDetails" binding:"required"`
	Services        []BookingServiceInput `json:"services" binding:"required,min=1"`
	AppointmentDate string                `json:"appointmentDate" binding:"required"`
	AppointmentTime string                `json:"appointmentTime" binding:"required"`
	Total           float64               `json:"total" binding:"min=0"`
	Note            string                `json:"note"`
	Address         string                `json:"address"`
}

type UpdateBookingInput struct {
	Status        *string `json:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	PaymentStatus *string `json:"paymentStatus" binding:"omitempty,oneof=unpaid paid"`
}

// BookingServiceResponse mirrors BookingServiceInput on the way out.
type BookingServiceResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Duration int       `json:"duration"`
}

// BookingResponse is the wire shape the panel consumes.
type BookingResponse struct {
	ID              uuid.UUID                `json:"id"`
	CustomerDetails CustomerDetails          `json:"customerDetails"`
	Services        []BookingServiceResponse `json:"services"`
	AppointmentDate string                   `json:"appointmentDate"`
	AppointmentTime string                   `json:"appointmentTime"`
	Total           float64                  `json:"total"`
	DepositPaid     float64                  `json:"depositPaid"`
	Status          string                   `json:"status"`
	PaymentStatus   string                   `json:"paymentStatus"`
	Note            string                   `json:"note"`
	Address         string                   `json:"address"`
}

func toBookingResponse(b models.Booking) BookingResponse {
	resp := BookingResponse{
		ID: b.ID,
		CustomerDetails: CustomerDetails{
			Name:  b.CustomerName,
			Phone: b.CustomerPhone,
			Email: b.CustomerEmail,
		},
		Services:        make([]BookingServiceResponse, 0, len(b.Items)),
		AppointmentDate: b.AppointmentDate.Format(utils.DateLayout),
		AppointmentTime: b.AppointmentTime,
		Total:           b.Total,
		DepositPaid:     b.DepositPaid,
		Status:          b.Status,
		PaymentStatus:   b.PaymentStatus,
		Note:            b.Note,
		Address:         b.Address,
	}
	for _, item := range b.Items {
		resp.Services = append(resp.Services, BookingServiceResponse{
			ID:       item.ServiceID,
			Name:     item.ServiceName,
			Price:    item.Price,
			Duration: item.Duration,
		})
	}
	return resp
}

// GetBookings retrieves all bookings, newest first, wrapped in a
// {"bookings": [...]} envelope.
func GetBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := config.DB.Preload("Items").
		Order("appointment_date DESC, appointment_time DESC").
		Find(&bookings).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve bookings")
		return
	}

	responses := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, toBookingResponse(b))
	}

	c.JSON(http.StatusOK, gin.H{"bookings": responses})
}

// CreateManualBooking records a booking entered by the admin. The panel
// submits a client-computed total; the server recomputes it from the
// snapshotted item prices and keeps its own figure when they disagree.
func CreateManualBooking(c *gin.Context) {
	var input ManualBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	date, err := utils.ParseDate(input.AppointmentDate)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment date, expected YYYY-MM-DD")
		return
	}

	if input.CustomerDetails.Phone != "" && !utils.ValidatePhone(input.CustomerDetails.Phone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number")
		return
	}

	var total float64
	items := make([]models.BookingItem, 0, len(input.Services))
	for _, s := range input.Services {
		total += s.Price
		items = append(items, models.BookingItem{
			ServiceID:   s.ID,
			ServiceName: s.Name,
			Price:       s.Price,
			Duration:    s.Duration,
		})
	}

	if math.Abs(total-input.Total) > 0.01 {
		log.Printf("Manual booking total mismatch: submitted %.2f, computed %.2f", input.Total, total)
	}

	booking := models.Booking{
		CustomerName:    input.CustomerDetails.Name,
		CustomerPhone:   input.CustomerDetails.Phone,
		CustomerEmail:   input.CustomerDetails.Email,
		Note:            input.Note,
		Address:         input.Address,
		AppointmentDate: date,
		AppointmentTime: input.AppointmentTime,
		Total:           total,
		Status:          models.BookingStatusPending,
		PaymentStatus:   models.PaymentStatusUnpaid,
		Items:           items,
	}

	if err := config.DB.Create(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, toBookingResponse(booking))
}

// UpdateBooking applies a status or payment-status change. Transition
// order is not enforced: the panel decides which buttons to show and the
// server accepts any target value from the closed set.
func UpdateBooking(c *gin.Context) {
	bookingUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Status == nil && input.PaymentStatus == nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Nothing to update")
		return
	}

	var booking models.Booking
	if err := config.DB.Preload("Items").First(&booking, "id = ?", bookingUUID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.Status != nil {
		booking.Status = *input.Status
	}
	if input.PaymentStatus != nil {
		booking.PaymentStatus = *input.PaymentStatus
	}

	if err := config.DB.Save(&booking).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update booking")
		return
	}

	c.JSON(http.StatusOK, toBookingResponse(booking))
}
