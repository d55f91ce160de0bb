package repositories

import (
	"context"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// BookingReader defines read operations for booking data.
type BookingReader interface {
	// FindLatestRenterBooking returns the apartment's most recent booking
	// with user_type renter, by arrival date. Returns apperrors.ErrNotFound
	// when the apartment has no renter booking.
	FindLatestRenterBooking(ctx context.Context, apartmentID string) (*domain.Booking, error)
}

// BookingRepositoryFacade combines all booking-related repository interfaces.
type BookingRepositoryFacade interface {
	BookingReader
}
