package order

import (
	"context"
	"errors"

	"github.com/mikios34/kpopshop-backend/entity"
	"github.com/mikios34/kpopshop-backend/pricing"
)

var (
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrCartLineInvalid = errors.New("cart has an invalid line")
)

// PlaceOrderRequest carries the checkout form fields.
type PlaceOrderRequest struct {
	Phone   string
	Address string
	Note    string
}

// CheckoutView is everything the checkout page renders.
type CheckoutView struct {
	Customer *entity.Customer
	Lines    []entity.CartLine
	Fees     pricing.Fees
	Totals   pricing.Totals
}

// Service drives the draft-cart → placed-order transition.
type Service interface {
	// Checkout prepares the checkout page. It fails with a
	// *pricing.ConfigError when fee rows are absent and with
	// ErrCartLineInvalid when any line lacks a color or has a non-positive
	// quantity.
	Checkout(ctx context.Context, customerID uint) (*CheckoutView, error)

	// PlaceOrder validates the phone, resolves fees (failing before touching
	// the cart on configuration errors), then atomically snapshots the cart
	// into an order and clears it. An empty cart still yields a zero-line
	// order whose total is the shipping-only grand total.
	PlaceOrder(ctx context.Context, customerID uint, req PlaceOrderRequest) (*entity.Order, error)

	ListOrders(ctx context.Context, customerID uint) ([]entity.Order, error)
}
