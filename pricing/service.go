package pricing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mikios34/kpopshop-backend/entity"
)

// ConfigErrorKind distinguishes which fee configuration row is missing.
type ConfigErrorKind int

const (
	FeeTypeMissing ConfigErrorKind = iota
	FeeValueMissing
)

// ConfigError reports an absent fee configuration row. It carries the fee key
// so handlers can render the admin-facing message for it.
type ConfigError struct {
	Kind ConfigErrorKind
	Key  string
}

func (e *ConfigError) Error() string {
	if e.Kind == FeeTypeMissing {
		return fmt.Sprintf("fee type %q is not configured", e.Key)
	}
	return fmt.Sprintf("fee value for %q is not configured", e.Key)
}

// Fees holds the raw configured fee strings, exactly as stored.
type Fees struct {
	Shipping string
	VAT      string
}

// Totals is the result of one cart pricing pass.
type Totals struct {
	Merchandise decimal.Decimal // Σ unit price × quantity
	Grand       decimal.Decimal // merchandise + shipping + merchandise × vat/100
}

// Service prices a cart. Totals are recomputed fresh on every request; cart
// contents and fee rows can change between requests, so nothing is cached.
type Service interface {
	Fees(ctx context.Context) (Fees, error)
	CartTotals(lines []entity.CartLine, fees Fees) (Totals, error)
}
