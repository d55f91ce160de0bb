package domain

import (
	"fmt"
	"strings"
)

// PayerRole identifies which party is financially responsible for a
// transaction. Rows with no payer recorded default to the owner; that default
// is applied here, once, at the data-store boundary.
type PayerRole string

const (
	PayerOwner   PayerRole = "owner"
	PayerRenter  PayerRole = "renter"
	PayerCompany PayerRole = "company"
)

// ParsePayerRole normalizes a raw who_pays/user_type value. Comparison is
// case-insensitive and an absent value resolves to PayerOwner.
func ParsePayerRole(raw *string) (PayerRole, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return PayerOwner, nil
	}
	switch PayerRole(strings.ToLower(strings.TrimSpace(*raw))) {
	case PayerOwner:
		return PayerOwner, nil
	case PayerRenter:
		return PayerRenter, nil
	case PayerCompany:
		return PayerCompany, nil
	default:
		return "", fmt.Errorf("unknown payer role %q", *raw)
	}
}
