package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderStatus enumerates the order lifecycle. Placement always writes
// OrderAwaitingHandling; the remaining states are advanced by back-office
// tooling outside this service.
type OrderStatus string

const (
	OrderAwaitingHandling OrderStatus = "cxl" // chờ xử lý
	OrderConfirmed        OrderStatus = "dxn" // đã xác nhận
	OrderDelivered        OrderStatus = "dgh" // đã giao hàng
	OrderCanceled         OrderStatus = "dh"  // đã hủy
)

// Order is the immutable snapshot written at checkout.
type Order struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	Code       uuid.UUID       `json:"code" gorm:"type:uuid;uniqueIndex;not null"`
	CustomerID uint            `json:"customer_id" gorm:"index;not null"`
	Customer   Customer        `json:"customer,omitempty"`
	Total      decimal.Decimal `json:"total" gorm:"type:numeric(14,2);not null"`
	Status     OrderStatus     `json:"status" gorm:"type:text;index;not null;default:'cxl'"`
	Phone      string          `json:"phone" gorm:"type:text;not null"`
	Address    string          `json:"address" gorm:"type:text;not null"`
	Note       string          `json:"note,omitempty" gorm:"type:text"`
	Lines      []OrderLine     `json:"lines,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `json:"-" gorm:"index"`
}

// OrderLine snapshots one purchased product. Created only inside order
// placement, never mutated afterward.
type OrderLine struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	OrderID   uint           `json:"order_id" gorm:"index;not null"`
	ProductID uint           `json:"product_id" gorm:"index;not null"`
	Product   Product        `json:"product,omitempty"`
	Quantity  int            `json:"quantity" gorm:"not null"`
	UnitPrice int64          `json:"unit_price" gorm:"type:bigint;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
