package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceRequest represents a service request row as stored in the database.
type ServiceRequest struct {
	ServiceRequestID string          `db:"service_request_id"`
	ApartmentID      string          `db:"apartment_id"`
	BookingID        *string         `db:"booking_id"` // Nullable
	RequesterID      string          `db:"requester_id"`
	Description      string          `db:"description"`
	Cost             decimal.Decimal `db:"cost"`
	Currency         string          `db:"currency"`
	WhoPays          *string         `db:"who_pays"`  // Nullable -> owner
	ActionAt         *time.Time      `db:"action_at"` // Nullable; wins over created_at when present
	AuditFields
}
