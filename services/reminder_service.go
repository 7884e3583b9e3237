// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"salon-admin/models"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler sends appointment reminders every evening at 6 PM for the
// next day's confirmed bookings.
func (s *ReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 18 * * *", func() {
		s.SendUpcomingReminders()
	})

	c.Start()
	log.Println("Reminder scheduler started")
}

// SendUpcomingReminders messages every confirmed booking scheduled for
// tomorrow that has a phone number and hasn't been reminded yet.
func (s *ReminderService) SendUpcomingReminders() {
	log.Println("Starting booking reminder processing...")

	tomorrow := time.Now().AddDate(0, 0, 1)
	start := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 0, 0, 0, 0, tomorrow.Location())

	var bookings []models.Booking
	if err := s.db.Preload("Items").
		Where("appointment_date = ? AND status = ?", start, models.BookingStatusConfirmed).
		Find(&bookings).Error; err != nil {
		log.Printf("Failed to fetch tomorrow's bookings: %v", err)
		return
	}

	for _, booking := range bookings {
		if booking.CustomerPhone == "" {
			continue
		}

		var sent int64
		s.db.Model(&models.ReminderLog{}).
			Where("booking_id = ? AND status = ?", booking.ID, "sent").
			Count(&sent)
		if sent > 0 {
			continue
		}

		s.sendReminder(booking)
	}

	log.Println("Booking reminder processing completed")
}

func (s *ReminderService) sendReminder(booking models.Booking) {
	names := make([]string, 0, len(booking.Items))
	for _, item := range booking.Items {
		names = append(names, item.ServiceName)
	}

	message := fmt.Sprintf(
		"Hi %s, a reminder of your appointment tomorrow at %s for %s. See you then!",
		booking.CustomerName, booking.AppointmentTime, strings.Join(names, ", "))

	// Use WhatsApp if phone is in E.164 format and starts with '+'
	channel := "sms"
	to := booking.CustomerPhone
	if strings.HasPrefix(booking.CustomerPhone, "+") {
		to = "whatsapp:" + booking.CustomerPhone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		log.Printf("Failed to send reminder to %s: %v", booking.CustomerPhone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent to %s, SID: %s", booking.CustomerPhone, *resp.Sid)
	} else {
		log.Printf("Reminder sent to %s, but no SID returned", booking.CustomerPhone)
	}

	reminderLog := models.ReminderLog{
		BookingID:    booking.ID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for booking %s: %v", booking.ID, err)
	}
}
