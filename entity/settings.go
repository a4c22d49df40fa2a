package entity

import (
	"time"

	"gorm.io/gorm"
)

// FeeType marks one configurable fee kind, e.g. "phiship" or "phivat".
// Exactly one FeeType and one FeeValue row are expected per kind; admins seed
// them, the storefront only reads.
type FeeType struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Code      string         `json:"code" gorm:"type:text;uniqueIndex;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// FeeValue holds the string-encoded value for a fee type. The raw string is
// handed to callers untouched; they parse it as the number they need.
type FeeValue struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	FeeTypeID uint           `json:"fee_type_id" gorm:"index;not null"`
	FeeType   FeeType        `json:"fee_type,omitempty"`
	Value     string         `json:"value" gorm:"type:text;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
