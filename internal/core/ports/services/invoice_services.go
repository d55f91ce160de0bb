package services

import (
	"context"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// InvoiceSummarySvc defines the portfolio-wide summary operations.
type InvoiceSummarySvc interface {
	// ApartmentSummary computes the paginated per-apartment financial summary
	// for everything the caller may see. Totals cover the entire filtered
	// set, independent of the page window.
	ApartmentSummary(ctx context.Context, identity domain.Identity, query domain.SummaryQuery) (*domain.ApartmentSummaryReport, error)

	// PreviousYearsTotals computes totals over all transactions dated
	// strictly before Jan 1 of query.BeforeYear, which must be set.
	PreviousYearsTotals(ctx context.Context, identity domain.Identity, query domain.SummaryQuery) (*domain.SummaryTotals, error)
}

// InvoiceDetailSvc defines the single-entity detail operations.
type InvoiceDetailSvc interface {
	// ApartmentDetail merges and date-sorts one apartment's transactions.
	ApartmentDetail(ctx context.Context, identity domain.Identity, apartmentID string, query domain.SummaryQuery) (*domain.ApartmentDetail, error)

	// UserDetail merges one user's transactions: owners see everything on
	// apartments they own, renters only what they personally created.
	UserDetail(ctx context.Context, identity domain.Identity, userID string, query domain.SummaryQuery) (*domain.UserDetail, error)
}

// RenterSummarySvc resolves the "who pays" renter figure for an apartment.
type RenterSummarySvc interface {
	// RenterSummary prefers the most recent renter booking; with none it
	// falls back to the apartment's dominant renter by payment totals.
	RenterSummary(ctx context.Context, identity domain.Identity, apartmentID string) (*domain.RenterSummary, error)
}

// InvoiceSvcFacade combines all invoice aggregation service interfaces.
type InvoiceSvcFacade interface {
	InvoiceSummarySvc
	InvoiceDetailSvc
	RenterSummarySvc
}
