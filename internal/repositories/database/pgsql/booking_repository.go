package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/touristvillage/portfolio_backend/internal/apperrors"
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portsrepo "github.com/touristvillage/portfolio_backend/internal/core/ports/repositories"
	"github.com/touristvillage/portfolio_backend/internal/models"
	"github.com/touristvillage/portfolio_backend/internal/utils/mapping"
)

type PgxBookingRepository struct {
	BaseRepository
}

func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxBookingRepository implements portsrepo.BookingRepositoryFacade
var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

// FindLatestRenterBooking returns the apartment's most recent renter booking
// by arrival date.
func (r *PgxBookingRepository) FindLatestRenterBooking(ctx context.Context, apartmentID string) (*domain.Booking, error) {
	query := `
		SELECT bk.booking_id, bk.apartment_id, bk.user_id, LOWER(bk.user_type),
		       bk.arrival_date, bk.leaving_date, bk.status,
		       bk.created_at, bk.created_by, bk.last_updated_at, bk.last_updated_by,
		       u.name
		FROM bookings bk
		JOIN users u ON u.user_id = bk.user_id
		WHERE bk.apartment_id = $1 AND LOWER(bk.user_type) = 'renter'
		ORDER BY bk.arrival_date DESC, bk.booking_id DESC
		LIMIT 1;
	`
	var m models.Booking
	var userName string
	err := r.Pool.QueryRow(ctx, query, apartmentID).Scan(
		&m.BookingID,
		&m.ApartmentID,
		&m.UserID,
		&m.UserType,
		&m.ArrivalDate,
		&m.LeavingDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&userName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest renter booking for apartment %s: %w", apartmentID, err)
	}

	booking, err := mapping.ToDomainBooking(m)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", m.BookingID, err)
	}
	booking.UserName = userName
	return &booking, nil
}
