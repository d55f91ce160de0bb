package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a payment row as stored in the database. PayerRole is the
// raw user_type column, nullable and case-insensitive in legacy data.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	ApartmentID string          `db:"apartment_id"`
	BookingID   *string         `db:"booking_id"` // Nullable
	Amount      decimal.Decimal `db:"amount"`
	Currency    string          `db:"currency"`
	PaidAt      time.Time       `db:"paid_at"`
	PayerRole   *string         `db:"user_type"` // Nullable -> owner
	AuditFields
}
