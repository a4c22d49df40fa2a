package entity

import (
	"time"

	"gorm.io/gorm"
)

// User is the base account record customers authenticate as.
type User struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	FirstName    string         `json:"first_name" gorm:"type:text;not null"`
	LastName     string         `json:"last_name" gorm:"type:text;not null"`
	Phone        string         `json:"phone" gorm:"type:text;uniqueIndex;not null"`
	PasswordHash string         `json:"-" gorm:"type:text;not null"`
	Role         string         `json:"role" gorm:"type:text;index;not null"` // e.g. "customer"
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
}

// Customer is the shop profile linked one-to-one with a base User. The link
// is set at registration and never changes.
type Customer struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"uniqueIndex;not null"`
	User      User           `json:"user,omitempty"`
	Active    bool           `json:"active" gorm:"default:true;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
