package models

import (
	"time"
)

const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentMissed    = "missed"
	AppointmentCancelled = "cancelled"
)

// ScheduledService is a future booking not yet converted into a Job.
type ScheduledService struct {
	ID                string    `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName      string    `gorm:"not null" json:"customerName"`
	PhoneNumber       string    `gorm:"not null" json:"phoneNumber"`
	CarDetails        string    `gorm:"not null" json:"carDetails"`
	ServiceType       string    `gorm:"not null" json:"serviceType"`
	CustomServiceType string    `json:"customServiceType,omitempty"` // set when serviceType is "Other"
	ScheduledDate     time.Time `gorm:"index" json:"scheduledDate"`
	Status            string    `gorm:"type:varchar(20);default:'scheduled'" json:"status"`
	Notes             string    `json:"notes,omitempty"`
	CreatedBy         string    `gorm:"type:uuid;index" json:"createdBy"`
	CreatedByName     string    `json:"createdByName"`
	CreatedAt         time.Time `json:"createdAt"`
}

// Terminal reports whether the status permits no further transitions.
func (s *ScheduledService) Terminal() bool {
	return s.Status != AppointmentScheduled
}
