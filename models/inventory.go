package models

import (
	"time"
)

type InventoryItem struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	ItemName     string    `gorm:"not null" json:"itemName"`
	Category     string    `gorm:"default:'general'" json:"category"`
	Quantity     float64   `gorm:"not null" json:"quantity"` // never negative
	Unit         string    `gorm:"not null" json:"unit"`
	Threshold    float64   `gorm:"not null" json:"threshold"`
	PricePerUnit float64   `gorm:"type:decimal(10,2)" json:"pricePerUnit,omitempty"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// LowStock reports whether the item is at or below its reorder threshold.
func (i *InventoryItem) LowStock() bool {
	return i.Quantity <= i.Threshold
}

// ConsumptionRequest is a single line of a consumption batch.
type ConsumptionRequest struct {
	ItemID       string  `json:"itemId" binding:"required"`
	QuantityUsed float64 `json:"quantityUsed" binding:"required,gt=0"`
}
