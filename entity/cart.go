package entity

import (
	"time"

	"gorm.io/gorm"
)

// CartLine is one product+color+quantity entry owned by a customer before
// checkout. ColorID stays nil until the shopper picks a color; checkout
// validation rejects such lines. At most one line exists per
// (customer, product) pair regardless of color; the service layer enforces
// this so that lines freed by a placed order can be re-added.
type CartLine struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	CustomerID uint           `json:"customer_id" gorm:"index;not null"`
	ProductID  uint           `json:"product_id" gorm:"index;not null"`
	Product    Product        `json:"product,omitempty"`
	ColorID    *uint          `json:"color_id,omitempty" gorm:"index;default:null"`
	Color      *Color         `json:"color,omitempty"`
	Quantity   int            `json:"quantity" gorm:"not null"`
	UnitPrice  int64          `json:"unit_price" gorm:"type:bigint;not null"` // list price captured at add time
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
