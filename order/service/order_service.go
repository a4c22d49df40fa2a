package service

import (
	"context"
	"regexp"

	"github.com/google/uuid"

	cartpkg "github.com/mikios34/kpopshop-backend/cart"
	"github.com/mikios34/kpopshop-backend/entity"
	orderpkg "github.com/mikios34/kpopshop-backend/order"
	"github.com/mikios34/kpopshop-backend/pricing"
)

// Vietnamese mobile number: leading zero plus nine digits.
var phonePattern = regexp.MustCompile(`^0\d{9}$`)

type orderService struct {
	repo     orderpkg.Repository
	cartRepo cartpkg.Repository
	pricing  pricing.Service
}

// NewOrderService constructs an order.Service. The cart repository is read
// directly for the checkout page; placement re-reads the lines under lock
// inside the repository transaction.
func NewOrderService(repo orderpkg.Repository, cartRepo cartpkg.Repository, pricingSvc pricing.Service) orderpkg.Service {
	return &orderService{repo: repo, cartRepo: cartRepo, pricing: pricingSvc}
}

func (s *orderService) Checkout(ctx context.Context, customerID uint) (*orderpkg.CheckoutView, error) {
	fees, err := s.pricing.Fees(ctx)
	if err != nil {
		return nil, err
	}

	customer, err := s.repo.GetCustomerByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	lines, err := s.cartRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if line.ColorID == nil || line.Quantity <= 0 {
			return nil, orderpkg.ErrCartLineInvalid
		}
	}

	totals, err := s.pricing.CartTotals(lines, fees)
	if err != nil {
		return nil, err
	}
	return &orderpkg.CheckoutView{
		Customer: customer,
		Lines:    lines,
		Fees:     fees,
		Totals:   totals,
	}, nil
}

func (s *orderService) PlaceOrder(ctx context.Context, customerID uint, req orderpkg.PlaceOrderRequest) (*entity.Order, error) {
	if !phonePattern.MatchString(req.Phone) {
		return nil, orderpkg.ErrInvalidPhone
	}

	// resolve configuration before any cart or order row is touched
	fees, err := s.pricing.Fees(ctx)
	if err != nil {
		return nil, err
	}

	return s.repo.Place(ctx, customerID, func(lines []entity.CartLine) (*entity.Order, []entity.OrderLine, error) {
		totals, err := s.pricing.CartTotals(lines, fees)
		if err != nil {
			return nil, nil, err
		}

		ord := &entity.Order{
			Code:       uuid.New(),
			CustomerID: customerID,
			Total:      totals.Grand,
			Status:     entity.OrderAwaitingHandling,
			Phone:      req.Phone,
			Address:    req.Address,
			Note:       req.Note,
		}
		orderLines := make([]entity.OrderLine, 0, len(lines))
		for _, line := range lines {
			orderLines = append(orderLines, entity.OrderLine{
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				UnitPrice: line.UnitPrice,
			})
		}
		return ord, orderLines, nil
	})
}

func (s *orderService) ListOrders(ctx context.Context, customerID uint) ([]entity.Order, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}
