package models

import "github.com/shopspring/decimal"

// UtilityReading represents a utility reading row as stored in the database.
// All four readings are independently nullable.
type UtilityReading struct {
	UtilityReadingID string           `db:"utility_reading_id"`
	ApartmentID      string           `db:"apartment_id"`
	BookingID        *string          `db:"booking_id"` // Nullable
	WaterStart       *decimal.Decimal `db:"water_start_reading"`
	WaterEnd         *decimal.Decimal `db:"water_end_reading"`
	ElectricityStart *decimal.Decimal `db:"electricity_start_reading"`
	ElectricityEnd   *decimal.Decimal `db:"electricity_end_reading"`
	WhoPays          *string          `db:"who_pays"` // Nullable -> owner
	AuditFields
}
