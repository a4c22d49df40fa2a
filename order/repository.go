package order

import (
	"context"

	"github.com/mikios34/kpopshop-backend/entity"
)

// BuildOrder turns the locked cart snapshot into the order to persist. It
// runs inside the placement transaction; returning an error rolls everything
// back and leaves the cart untouched.
type BuildOrder func(lines []entity.CartLine) (*entity.Order, []entity.OrderLine, error)

// Repository specifies order related database operations.
type Repository interface {
	GetCustomerByID(ctx context.Context, id uint) (*entity.Customer, error)

	// Place runs one transaction: lock the customer's cart lines, build the
	// order from the snapshot, persist order + lines, delete the cart lines.
	// The row locks keep a concurrent checkout from the same customer from
	// double-spending the cart.
	Place(ctx context.Context, customerID uint, build BuildOrder) (*entity.Order, error)

	ListByCustomer(ctx context.Context, customerID uint) ([]entity.Order, error)
}
