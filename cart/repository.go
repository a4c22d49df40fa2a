package cart

import (
	"context"

	"github.com/mikios34/kpopshop-backend/entity"
)

// Repository specifies cart related database operations. Reads that take a
// customerID are scoped to that customer; a line belonging to someone else is
// reported as not found.
type Repository interface {
	ListByCustomer(ctx context.Context, customerID uint) ([]entity.CartLine, error)
	GetForCustomer(ctx context.Context, id, customerID uint) (*entity.CartLine, error)
	ExistsForProduct(ctx context.Context, customerID, productID uint) (bool, error)
	Create(ctx context.Context, line *entity.CartLine) (*entity.CartLine, error)
	UpdateQuantity(ctx context.Context, id uint, quantity int) error
	UpdateColor(ctx context.Context, id, colorID uint) error
	Delete(ctx context.Context, id uint) error

	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
	ColorExists(ctx context.Context, id uint) (bool, error)
	ListColors(ctx context.Context) ([]entity.Color, error)
}
