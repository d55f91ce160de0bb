package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency is a closed set of the currencies the portfolio transacts in.
// Amounts in different currencies are never combined into one scalar.
type Currency string

const (
	EGP Currency = "EGP"
	GBP Currency = "GBP"
)

// Currencies lists the supported currencies in their canonical (stable) order.
var Currencies = []Currency{EGP, GBP}

// ParseCurrency normalizes a raw currency code from the data store or a request.
// Normalization happens once here; the rest of the code compares Currency values.
func ParseCurrency(raw string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(raw))) {
	case EGP:
		return EGP, nil
	case GBP:
		return GBP, nil
	default:
		return "", fmt.Errorf("unknown currency code %q", raw)
	}
}

// MoneyByCurrency is a per-currency running total. It is the ledger of the
// aggregation engine: adding EGP never touches GBP and vice versa.
type MoneyByCurrency map[Currency]decimal.Decimal

// NewMoneyByCurrency returns an empty ledger.
func NewMoneyByCurrency() MoneyByCurrency {
	return make(MoneyByCurrency, len(Currencies))
}

// Add accumulates amount under the given currency.
func (m MoneyByCurrency) Add(currency Currency, amount decimal.Decimal) {
	m[currency] = m[currency].Add(amount)
}

// AddAll accumulates every entry of other into m.
func (m MoneyByCurrency) AddAll(other MoneyByCurrency) {
	for currency, amount := range other {
		m.Add(currency, amount)
	}
}

// Get returns the accumulated amount for a currency, zero when absent.
func (m MoneyByCurrency) Get(currency Currency) decimal.Decimal {
	if amount, ok := m[currency]; ok {
		return amount
	}
	return decimal.Zero
}

// Sub returns a new ledger holding m - other per currency.
func (m MoneyByCurrency) Sub(other MoneyByCurrency) MoneyByCurrency {
	result := NewMoneyByCurrency()
	for _, currency := range Currencies {
		diff := m.Get(currency).Sub(other.Get(currency))
		if !diff.IsZero() {
			result[currency] = diff
		}
	}
	return result
}

// MoneySnapshot is the serializable, zero-initialized view of a ledger.
// Field order fixes the iteration order of the underlying map for output.
type MoneySnapshot struct {
	EGP decimal.Decimal `json:"EGP"`
	GBP decimal.Decimal `json:"GBP"`
}

// Snapshot renders the ledger with every supported currency present.
func (m MoneyByCurrency) Snapshot() MoneySnapshot {
	return MoneySnapshot{
		EGP: m.Get(EGP),
		GBP: m.Get(GBP),
	}
}
