package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	portsrepo "github.com/touristvillage/portfolio_backend/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgx repository against the shared pool.
// meterMax is the utility meter rollover ceiling (digit capacity).
func NewRepositoryProvider(dbPool *pgxpool.Pool, meterMax decimal.Decimal) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ApartmentRepo:      newPgxApartmentRepository(dbPool),
		BookingRepo:        newPgxBookingRepository(dbPool),
		UserRepo:           newPgxUserRepository(dbPool),
		VillageRepo:        newPgxVillageRepository(dbPool),
		PaymentRepo:        newPgxPaymentRepository(dbPool),
		ServiceRequestRepo: newPgxServiceRequestRepository(dbPool),
		UtilityReadingRepo: newPgxUtilityReadingRepository(dbPool, meterMax),
	}
}
