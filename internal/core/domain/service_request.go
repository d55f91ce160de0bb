package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceRequest is a billable request raised against an apartment
// (maintenance, cleaning, etc.). Its cost is attributed to its currency.
type ServiceRequest struct {
	ServiceRequestID string          `json:"serviceRequestID"` // Primary Key (e.g., UUID)
	ApartmentID      string          `json:"apartmentID"`
	BookingID        *string         `json:"bookingID,omitempty"` // Nullable
	RequesterID      string          `json:"requesterID"`         // FK -> User.userID
	Description      string          `json:"description"`
	Cost             decimal.Decimal `json:"cost"`
	Currency         Currency        `json:"currency"`
	PayerRole        PayerRole       `json:"payerRole"`          // who_pays; defaults to owner
	ActionAt         *time.Time      `json:"actionAt,omitempty"` // Nullable
	AuditFields
}

// EffectiveDate is the date the request counts under for filtering and
// sorting: the action date when one is recorded, otherwise creation time.
func (s ServiceRequest) EffectiveDate() time.Time {
	if s.ActionAt != nil {
		return *s.ActionAt
	}
	return s.CreatedAt
}
