package pricing

import "context"

// Fee keys as seeded in the fee configuration tables.
const (
	FeeShipping = "phiship"
	FeeVAT      = "phivat"
)

// Repository resolves fee configuration rows. Pure reads.
type Repository interface {
	// GetFeeValue returns the raw string value for a fee key. It returns a
	// *ConfigError when either the fee-type row or its value row is absent;
	// both cases are administrative faults, not user errors.
	GetFeeValue(ctx context.Context, code string) (string, error)
}
