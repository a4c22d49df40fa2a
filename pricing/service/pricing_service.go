package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mikios34/kpopshop-backend/entity"
	"github.com/mikios34/kpopshop-backend/pricing"
)

var hundred = decimal.NewFromInt(100)

type pricingService struct {
	repo pricing.Repository
}

// NewPricingService constructs a pricing.Service backed by the fee repository.
func NewPricingService(repo pricing.Repository) pricing.Service {
	return &pricingService{repo: repo}
}

func (s *pricingService) Fees(ctx context.Context) (pricing.Fees, error) {
	ship, err := s.repo.GetFeeValue(ctx, pricing.FeeShipping)
	if err != nil {
		return pricing.Fees{}, err
	}
	vat, err := s.repo.GetFeeValue(ctx, pricing.FeeVAT)
	if err != nil {
		return pricing.Fees{}, err
	}
	return pricing.Fees{Shipping: ship, VAT: vat}, nil
}

// CartTotals sums unit price × quantity over the lines, then adds the
// shipping fee and VAT on the merchandise subtotal. An empty cart therefore
// collapses to the shipping fee alone.
func (s *pricingService) CartTotals(lines []entity.CartLine, fees pricing.Fees) (pricing.Totals, error) {
	ship, err := decimal.NewFromString(fees.Shipping)
	if err != nil {
		return pricing.Totals{}, fmt.Errorf("malformed %s value %q: %w", pricing.FeeShipping, fees.Shipping, err)
	}
	vat, err := decimal.NewFromString(fees.VAT)
	if err != nil {
		return pricing.Totals{}, fmt.Errorf("malformed %s value %q: %w", pricing.FeeVAT, fees.VAT, err)
	}

	merchandise := decimal.Zero
	for _, line := range lines {
		lineTotal := decimal.NewFromInt(line.UnitPrice).Mul(decimal.NewFromInt(int64(line.Quantity)))
		merchandise = merchandise.Add(lineTotal)
	}

	grand := merchandise.Add(ship).Add(merchandise.Mul(vat).Div(hundred))
	return pricing.Totals{Merchandise: merchandise, Grand: grand}, nil
}
