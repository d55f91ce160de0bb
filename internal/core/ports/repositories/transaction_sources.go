package repositories

import (
	"context"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// TransactionSource is the shape shared by the three heterogeneous
// transaction stores (payments, service requests, utility readings). Each
// implementation reduces its own rows into per-currency ledger contributions
// in a single batched query over the given apartment set; callers never loop
// apartments issuing per-row queries.
type TransactionSource interface {
	// AggregateByApartment sums the source's transactions per apartment and
	// currency over the full apartment set, honoring the filter. Apartments
	// with no matching transactions are simply absent from the result.
	AggregateByApartment(ctx context.Context, apartmentIDs []string, filter domain.TxnFilter) (map[string]domain.MoneyByCurrency, error)

	// ListLines returns the source's transactions for the given scope as
	// normalized invoice lines, unsorted; the caller merges and orders them.
	ListLines(ctx context.Context, scope domain.LineScope, filter domain.TxnFilter) ([]domain.InvoiceLine, error)
}

// RenterGroupedSource aggregates a source's rows per renting user, used by
// the renter summary fallback when an apartment has no renter booking.
type RenterGroupedSource interface {
	// AggregateByRenter sums the source's renter-paid transactions for one
	// apartment, grouped by the resolved renter user.
	AggregateByRenter(ctx context.Context, apartmentID string) ([]domain.RenterContribution, error)
}

// PaymentRepositoryFacade exposes the payments transaction source.
type PaymentRepositoryFacade interface {
	TransactionSource
	RenterGroupedSource
}

// ServiceRequestRepositoryFacade exposes the service requests transaction source.
type ServiceRequestRepositoryFacade interface {
	TransactionSource
	RenterGroupedSource
}

// UtilityReadingRepositoryFacade exposes the utility readings transaction
// source. Utility costs are derived from meter readings and village unit
// prices; contributions are always EGP.
type UtilityReadingRepositoryFacade interface {
	TransactionSource
}
