package services

import (
	"time"

	"mechshop-backend/models"
	"mechshop-backend/store"
	"mechshop-backend/utils"
)

type AppointmentInput struct {
	CustomerName      string    `json:"customerName" binding:"required"`
	PhoneNumber       string    `json:"phoneNumber" binding:"required"`
	CarDetails        string    `json:"carDetails" binding:"required"`
	ServiceType       string    `json:"serviceType" binding:"required"`
	CustomServiceType string    `json:"customServiceType"`
	ScheduledDate     time.Time `json:"scheduledDate" binding:"required"`
	Notes             string    `json:"notes"`
}

type AppointmentService struct {
	store store.Store
}

func NewAppointmentService(s store.Store) *AppointmentService {
	return &AppointmentService{store: s}
}

func (s *AppointmentService) List() ([]models.ScheduledService, error) {
	return s.store.Appointments().List()
}

func (s *AppointmentService) Get(id string) (*models.ScheduledService, error) {
	return s.store.Appointments().GetByID(id)
}

// Create validates the booking and persists it with status "scheduled".
// Nothing is written when validation fails.
func (s *AppointmentService) Create(input AppointmentInput, creator *models.User) (*models.ScheduledService, error) {
	if !utils.ValidatePhone(input.PhoneNumber) {
		return nil, store.Validationf("invalid phone number format")
	}
	if !input.ScheduledDate.After(time.Now()) {
		return nil, store.Validationf("appointment must be scheduled for a future date and time")
	}

	appointment := &models.ScheduledService{
		CustomerName:      input.CustomerName,
		PhoneNumber:       input.PhoneNumber,
		CarDetails:        input.CarDetails,
		ServiceType:       input.ServiceType,
		CustomServiceType: input.CustomServiceType,
		ScheduledDate:     input.ScheduledDate,
		Status:            models.AppointmentScheduled,
		Notes:             input.Notes,
		CreatedBy:         creator.ID,
		CreatedByName:     creator.Name,
	}
	if err := s.store.Appointments().Create(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Update replaces the appointment's descriptive fields. Status changes go
// through UpdateStatus.
func (s *AppointmentService) Update(id string, input AppointmentInput) (*models.ScheduledService, error) {
	appointment, err := s.store.Appointments().GetByID(id)
	if err != nil {
		return nil, err
	}
	if !utils.ValidatePhone(input.PhoneNumber) {
		return nil, store.Validationf("invalid phone number format")
	}

	appointment.CustomerName = input.CustomerName
	appointment.PhoneNumber = input.PhoneNumber
	appointment.CarDetails = input.CarDetails
	appointment.ServiceType = input.ServiceType
	appointment.CustomServiceType = input.CustomServiceType
	appointment.ScheduledDate = input.ScheduledDate
	appointment.Notes = input.Notes

	if err := s.store.Appointments().Update(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// UpdateStatus moves a scheduled appointment to one of its terminal states.
// Completed, missed and cancelled are all terminal: once an appointment has
// left "scheduled" no further transition is accepted.
func (s *AppointmentService) UpdateStatus(id, status string) (*models.ScheduledService, error) {
	switch status {
	case models.AppointmentCompleted, models.AppointmentMissed, models.AppointmentCancelled:
	default:
		return nil, store.Validationf("invalid appointment status: %s", status)
	}

	appointment, err := s.store.Appointments().GetByID(id)
	if err != nil {
		return nil, err
	}
	if appointment.Terminal() {
		return nil, store.Validationf("appointment is already %s", appointment.Status)
	}

	appointment.Status = status
	if err := s.store.Appointments().Update(appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *AppointmentService) Delete(id string) error {
	return s.store.Appointments().Delete(id)
}

// ForDate returns appointments on the given calendar day, any status.
func (s *AppointmentService) ForDate(date time.Time) ([]models.ScheduledService, error) {
	appointments, err := s.store.Appointments().List()
	if err != nil {
		return nil, err
	}
	var out []models.ScheduledService
	for _, appointment := range appointments {
		if utils.SameDay(date, appointment.ScheduledDate) {
			out = append(out, appointment)
		}
	}
	return out, nil
}

func (s *AppointmentService) ForToday() ([]models.ScheduledService, error) {
	return s.ForDate(time.Now())
}

// Upcoming returns still-scheduled appointments in [now, now+days], both
// bounds inclusive.
func (s *AppointmentService) Upcoming(days int) ([]models.ScheduledService, error) {
	if days <= 0 {
		days = 7
	}
	appointments, err := s.store.Appointments().List()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	until := now.AddDate(0, 0, days)

	var out []models.ScheduledService
	for _, appointment := range appointments {
		if appointment.Status != models.AppointmentScheduled {
			continue
		}
		if appointment.ScheduledDate.Before(now) || appointment.ScheduledDate.After(until) {
			continue
		}
		out = append(out, appointment)
	}
	return out, nil
}
