package models

import "time"

// Booking represents a booking row as stored in the database.
type Booking struct {
	BookingID   string    `db:"booking_id"`
	ApartmentID string    `db:"apartment_id"`
	UserID      string    `db:"user_id"`
	UserType    string    `db:"user_type"`
	ArrivalDate time.Time `db:"arrival_date"`
	LeavingDate time.Time `db:"leaving_date"`
	Status      string    `db:"status"`
	AuditFields
}
