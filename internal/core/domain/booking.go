package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingUserType distinguishes owner stays from renter stays.
type BookingUserType string

const (
	BookingOwner  BookingUserType = "owner"
	BookingRenter BookingUserType = "renter"
)

// ParseBookingUserType normalizes a raw user_type value.
func ParseBookingUserType(raw string) (BookingUserType, error) {
	switch BookingUserType(strings.ToLower(strings.TrimSpace(raw))) {
	case BookingOwner:
		return BookingOwner, nil
	case BookingRenter:
		return BookingRenter, nil
	default:
		return "", fmt.Errorf("unknown booking user type %q", raw)
	}
}

// Booking represents a stay in an apartment for a date range.
type Booking struct {
	BookingID   string          `json:"bookingID"` // Primary Key (e.g., UUID)
	ApartmentID string          `json:"apartmentID"`
	UserID      string          `json:"userID"`
	UserName    string          `json:"userName,omitempty"`
	UserType    BookingUserType `json:"userType"`
	ArrivalDate time.Time       `json:"arrivalDate"`
	LeavingDate time.Time       `json:"leavingDate"`
	Status      string          `json:"status"`
	AuditFields
}
