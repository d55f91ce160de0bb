package metering

import (
	"github.com/shopspring/decimal"
)

// DefaultMeterMax is the highest value a standard six-digit utility meter can
// display before wrapping back to zero.
var DefaultMeterMax = decimal.NewFromInt(999999)

// Usage converts a pair of meter readings into a non-negative consumption
// value. A missing start or end reading yields zero usage. When the end
// reading is below the start reading the meter is assumed to have rolled over
// exactly once: usage = (max - start) + end.
func Usage(start, end *decimal.Decimal, max decimal.Decimal) decimal.Decimal {
	if start == nil || end == nil {
		return decimal.Zero
	}
	if end.GreaterThanOrEqual(*start) {
		return end.Sub(*start)
	}
	return max.Sub(*start).Add(*end)
}

// Cost prices a usage figure at the village's unit rate. Utility pricing is
// EGP-only, so the result is always an EGP amount.
func Cost(usage, unitPrice decimal.Decimal) decimal.Decimal {
	return usage.Mul(unitPrice)
}
