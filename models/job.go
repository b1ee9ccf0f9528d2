package models

import (
	"time"
)

const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
	PaymentCheck    = "check"
)

// Job is a recorded, billed unit of completed work. Service and consumable
// lines carry name/price snapshots taken at creation time, so later catalog
// edits never change historical records.
type Job struct {
	ID           string          `gorm:"type:uuid;primary_key" json:"id"`
	CustomerName string          `gorm:"not null" json:"customerName"`
	Vehicle      string          `gorm:"not null" json:"vehicle"`
	Services     []JobService    `gorm:"foreignKey:JobID" json:"services"`
	Consumables  []JobConsumable `gorm:"foreignKey:JobID" json:"consumables,omitempty"`
	TotalPrice   float64         `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
	PaymentType  string          `gorm:"type:varchar(20);not null" json:"paymentType"`
	Date         time.Time       `json:"date"`
	StaffID      string          `gorm:"type:uuid;index;not null" json:"staffId"`
	StaffName    string          `json:"staffName"`
	Notes        string          `json:"notes,omitempty"`
}

type JobService struct {
	ID          string  `gorm:"type:uuid;primary_key" json:"-"`
	JobID       string  `gorm:"type:uuid;index;not null" json:"-"`
	ServiceID   string  `gorm:"type:uuid" json:"serviceId"`
	ServiceName string  `gorm:"not null" json:"serviceName"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int     `gorm:"default:1" json:"quantity"`
	IsCustom    bool    `json:"isCustom,omitempty"`
}

type JobConsumable struct {
	ID           string  `gorm:"type:uuid;primary_key" json:"-"`
	JobID        string  `gorm:"type:uuid;index;not null" json:"-"`
	ItemID       string  `gorm:"type:uuid;not null" json:"itemId"`
	ItemName     string  `gorm:"not null" json:"itemName"`
	QuantityUsed float64 `gorm:"not null" json:"quantityUsed"`
	Unit         string  `json:"unit"`
}
