// services/alerts.go
package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"mechshop-backend/models"
	"mechshop-backend/store"
)

// AlertService sends the daily SMS sweep: a low-stock digest to the shop's
// alert number and a reminder to every customer booked for tomorrow.
type AlertService struct {
	store        store.Store
	inventory    *InventoryService
	appointments *AppointmentService
	client       *twilio.RestClient
}

func NewAlertService(s store.Store, inventory *InventoryService, appointments *AppointmentService) *AlertService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &AlertService{
		store:        s,
		inventory:    inventory,
		appointments: appointments,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the daily sweep at 9 AM. Requires Twilio credentials;
// without them the scheduler is not started.
func (s *AlertService) StartScheduler() {
	if os.Getenv("TWILIO_ACCOUNT_SID") == "" {
		log.Println("Twilio not configured, alert scheduler disabled")
		return
	}

	c := cron.New()
	c.AddFunc("0 9 * * *", func() {
		s.SendDailyAlerts()
	})
	c.Start()
	log.Println("Alert scheduler started")
}

func (s *AlertService) SendDailyAlerts() {
	log.Println("Starting daily alert processing...")
	s.sendLowStockDigest()
	s.sendAppointmentReminders()
	log.Println("Daily alert processing completed")
}

func (s *AlertService) sendLowStockDigest() {
	alertPhone := os.Getenv("ALERT_PHONE")
	if alertPhone == "" {
		return
	}

	items, err := s.inventory.LowStock()
	if err != nil {
		log.Printf("Failed to fetch low stock items: %v", err)
		return
	}
	if len(items) == 0 {
		return
	}

	var lines []string
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("%s: %g %s left (threshold %g)",
			item.ItemName, item.Quantity, item.Unit, item.Threshold))
	}
	message := "Low stock alert:\n" + strings.Join(lines, "\n")

	s.sendSMS(alertPhone, message)
}

func (s *AlertService) sendAppointmentReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1)
	appointments, err := s.appointments.ForDate(tomorrow)
	if err != nil {
		log.Printf("Failed to fetch tomorrow's appointments: %v", err)
		return
	}

	for _, appointment := range appointments {
		if appointment.Status != models.AppointmentScheduled {
			continue
		}
		message := fmt.Sprintf("Hi %s, a reminder of your %s appointment tomorrow at %s.",
			appointment.CustomerName,
			appointment.ServiceType,
			appointment.ScheduledDate.Format("15:04"))
		s.sendSMS(appointment.PhoneNumber, message)
	}
}

func (s *AlertService) sendSMS(to, body string) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(body)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send message to %s: %v", to, err)
		return
	}
	if resp.Sid != nil {
		log.Printf("Message sent to %s, SID: %s", to, *resp.Sid)
	} else {
		log.Printf("Message sent to %s, but no SID returned", to)
	}
}
