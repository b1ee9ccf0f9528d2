package models

const (
	ServiceTypeFixed  = "fixed"
	ServiceTypeHourly = "hourly"
	ServiceTypeCustom = "custom"
)

type Service struct {
	ID            string  `gorm:"type:uuid;primary_key" json:"id"`
	Name          string  `gorm:"not null" json:"name"`
	Type          string  `gorm:"type:varchar(20);not null" json:"type"` // fixed, hourly or custom
	Price         float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	EstimatedTime int     `json:"estimatedTime,omitempty"` // in minutes
	IsActive      bool    `gorm:"default:true" json:"isActive"`
}
