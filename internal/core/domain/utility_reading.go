package domain

import (
	"github.com/shopspring/decimal"
)

// UtilityReading holds a pair of water and electricity meter readings for an
// apartment. Any of the four readings may be absent independently; a missing
// start or end on a meter means that meter contributes no usage.
type UtilityReading struct {
	UtilityReadingID string           `json:"utilityReadingID"` // Primary Key (e.g., UUID)
	ApartmentID      string           `json:"apartmentID"`
	BookingID        *string          `json:"bookingID,omitempty"` // Nullable
	WaterStart       *decimal.Decimal `json:"waterStart,omitempty"`
	WaterEnd         *decimal.Decimal `json:"waterEnd,omitempty"`
	ElectricityStart *decimal.Decimal `json:"electricityStart,omitempty"`
	ElectricityEnd   *decimal.Decimal `json:"electricityEnd,omitempty"`
	PayerRole        PayerRole        `json:"payerRole"` // who_pays; defaults to owner
	AuditFields
}
