package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is money received against an apartment, optionally tied to a
// booking. The amount is attributed verbatim to its currency.
type Payment struct {
	PaymentID   string          `json:"paymentID"` // Primary Key (e.g., UUID)
	ApartmentID string          `json:"apartmentID"`
	BookingID   *string         `json:"bookingID,omitempty"` // Nullable
	Amount      decimal.Decimal `json:"amount"`
	Currency    Currency        `json:"currency"`
	PaidAt      time.Time       `json:"paidAt"`
	PayerRole   PayerRole       `json:"payerRole"` // who paid; defaults to owner
	AuditFields
}
