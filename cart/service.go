package cart

import (
	"context"
	"errors"

	"github.com/mikios34/kpopshop-backend/entity"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateLine   = errors.New("product already in cart")
	ErrLineNotFound    = errors.New("cart line not found")
	ErrColorNotFound   = errors.New("color not found")

	// checkout validation failures
	ErrMissingColor        = errors.New("cart line has no color selected")
	ErrNonPositiveQuantity = errors.New("cart line quantity is not positive")
)

// AddLineRequest carries the data for adding a product to the cart. ColorID
// is nil when the shopper has not picked a color yet; Quantity defaults to 1
// at the handler when omitted.
type AddLineRequest struct {
	ProductID uint
	ColorID   *uint
	Quantity  int
}

// Service exposes cart business operations. Authentication is the handlers'
// concern: every method takes the already-resolved customer id.
type Service interface {
	List(ctx context.Context, customerID uint) ([]entity.CartLine, error)
	ListColors(ctx context.Context) ([]entity.Color, error)
	Add(ctx context.Context, customerID uint, req AddLineRequest) (*entity.CartLine, error)
	UpdateQuantity(ctx context.Context, customerID, lineID uint, quantity int) error
	UpdateColor(ctx context.Context, customerID, lineID, colorID uint) error
	Remove(ctx context.Context, customerID, lineID uint) error

	// Validate scans every line of the customer's cart and fails fast on the
	// first violation: ErrMissingColor before ErrNonPositiveQuantity per
	// line. An empty cart is valid.
	Validate(ctx context.Context, customerID uint) error
}
