package models

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type User struct {
	ID       string `gorm:"type:uuid;primary_key" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash
	Name     string `gorm:"not null" json:"name"`
	Email    string `json:"email"`

	Role     string `gorm:"type:varchar(20);not null" json:"role"` // 'admin' or 'staff'
	IsActive bool   `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
}
