package services

import (
	"context"
	"log/slog"
	"sort"

	"github.com/touristvillage/portfolio_backend/internal/apperrors"
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portsrepo "github.com/touristvillage/portfolio_backend/internal/core/ports/repositories"
	portssvc "github.com/touristvillage/portfolio_backend/internal/core/ports/services"
	"github.com/touristvillage/portfolio_backend/internal/utils/pagination"
)

// invoiceServiceImpl implements the InvoiceSvcFacade interface. It is the
// aggregation engine: it reconciles the three transaction sources into
// per-apartment and per-user financial positions, with all visibility
// filtering pushed down to the stores via the caller's scope.
type invoiceServiceImpl struct {
	BaseService
	apartmentRepo   portsrepo.ApartmentRepositoryFacade
	bookingRepo     portsrepo.BookingRepositoryFacade
	userRepo        portsrepo.UserRepositoryFacade
	payments        portsrepo.PaymentRepositoryFacade
	serviceRequests portsrepo.ServiceRequestRepositoryFacade
	utilityReadings portsrepo.UtilityReadingRepositoryFacade
}

// InvoiceServiceOption is a functional option for configuring the invoice service
type InvoiceServiceOption func(*invoiceServiceImpl)

// WithBookingRepository adds the booking repository dependency
func WithBookingRepository(repo portsrepo.BookingRepositoryFacade) InvoiceServiceOption {
	return func(s *invoiceServiceImpl) {
		s.bookingRepo = repo
	}
}

// WithUserRepository adds the user repository dependency
func WithUserRepository(repo portsrepo.UserRepositoryFacade) InvoiceServiceOption {
	return func(s *invoiceServiceImpl) {
		s.userRepo = repo
	}
}

// NewInvoiceServiceImpl creates a new invoice service over the three
// transaction sources and the apartment store.
func NewInvoiceServiceImpl(
	apartmentRepo portsrepo.ApartmentRepositoryFacade,
	payments portsrepo.PaymentRepositoryFacade,
	serviceRequests portsrepo.ServiceRequestRepositoryFacade,
	utilityReadings portsrepo.UtilityReadingRepositoryFacade,
	options ...InvoiceServiceOption,
) portssvc.InvoiceSvcFacade {
	svc := &invoiceServiceImpl{
		apartmentRepo:   apartmentRepo,
		payments:        payments,
		serviceRequests: serviceRequests,
		utilityReadings: utilityReadings,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure invoiceServiceImpl implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceServiceImpl)(nil)

// sourceAggregates holds each source's per-apartment ledger for one query.
// Page rows and grand totals are both derived from these maps, so a row's
// figures and the report totals can never disagree about the same apartment.
type sourceAggregates struct {
	payments  map[string]domain.MoneyByCurrency
	requests  map[string]domain.MoneyByCurrency
	utilities map[string]domain.MoneyByCurrency
}

// aggregateSources runs one batched aggregation per source over the full
// apartment set. Three queries total, regardless of how many apartments the
// caller can see.
func (s *invoiceServiceImpl) aggregateSources(ctx context.Context, apartmentIDs []string, filter domain.TxnFilter) (*sourceAggregates, error) {
	paid, err := s.payments.AggregateByApartment(ctx, apartmentIDs, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate payments")
		return nil, err
	}
	requested, err := s.serviceRequests.AggregateByApartment(ctx, apartmentIDs, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate service requests")
		return nil, err
	}
	utilities, err := s.utilityReadings.AggregateByApartment(ctx, apartmentIDs, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to aggregate utility consumption")
		return nil, err
	}
	return &sourceAggregates{payments: paid, requests: requested, utilities: utilities}, nil
}

// totalsFor assembles one apartment's position from the aggregate maps.
// Money spent is what was paid in; money requested is service requests plus
// utility costs; net is requested minus spent, per currency.
func (a *sourceAggregates) totalsFor(apartmentID string) domain.SummaryTotals {
	totals := domain.NewSummaryTotals()
	totals.MoneySpent.AddAll(a.payments[apartmentID])
	totals.MoneyRequested.AddAll(a.requests[apartmentID])
	totals.MoneyRequested.AddAll(a.utilities[apartmentID])
	totals.NetMoney = totals.MoneyRequested.Sub(totals.MoneySpent)
	return totals
}

// grandTotals folds every apartment's position into one set of totals.
func (a *sourceAggregates) grandTotals(apartmentIDs []string) domain.SummaryTotals {
	totals := domain.NewSummaryTotals()
	for _, id := range apartmentIDs {
		totals.MoneySpent.AddAll(a.payments[id])
		totals.MoneyRequested.AddAll(a.requests[id])
		totals.MoneyRequested.AddAll(a.utilities[id])
	}
	totals.NetMoney = totals.MoneyRequested.Sub(totals.MoneySpent)
	return totals
}

// ApartmentSummary computes the paginated per-apartment summary. Totals are
// computed over the entire filtered set; the page window only selects which
// rows are materialized.
func (s *invoiceServiceImpl) ApartmentSummary(ctx context.Context, identity domain.Identity, query domain.SummaryQuery) (*domain.ApartmentSummaryReport, error) {
	scope := scopeForIdentity(identity)
	filter := query.ApartmentFilter()
	params := pagination.Normalize(query.Page, query.Limit)

	apartmentIDs, err := s.apartmentRepo.ListVisibleApartmentIDs(ctx, scope, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list visible apartments", slog.String("user_id", identity.UserID))
		return nil, err
	}

	aggregates, err := s.aggregateSources(ctx, apartmentIDs, query.TxnFilter())
	if err != nil {
		return nil, err
	}

	pageApartments, err := s.apartmentRepo.ListVisibleApartments(ctx, scope, filter, params.Limit, params.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list apartment page", slog.String("user_id", identity.UserID))
		return nil, err
	}

	rows := make([]domain.ApartmentSummaryRow, 0, len(pageApartments))
	for _, apt := range pageApartments {
		rows = append(rows, domain.ApartmentSummaryRow{
			ApartmentID:   apt.ApartmentID,
			ApartmentName: apt.Name,
			VillageName:   apt.VillageName,
			OwnerID:       apt.OwnerID,
			OwnerName:     apt.OwnerName,
			Phase:         apt.Phase,
			SummaryTotals: aggregates.totalsFor(apt.ApartmentID),
		})
	}

	total := int64(len(apartmentIDs))
	return &domain.ApartmentSummaryReport{
		Rows:   rows,
		Totals: aggregates.grandTotals(apartmentIDs),
		Pagination: domain.Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: params.TotalPages(total),
		},
	}, nil
}

// PreviousYearsTotals computes the caller's accumulated position over all
// transactions dated strictly before Jan 1 of query.BeforeYear.
func (s *invoiceServiceImpl) PreviousYearsTotals(ctx context.Context, identity domain.Identity, query domain.SummaryQuery) (*domain.SummaryTotals, error) {
	if query.BeforeYear == nil {
		return nil, apperrors.NewValidationError("before_year is required")
	}

	scope := scopeForIdentity(identity)
	apartmentIDs, err := s.apartmentRepo.ListVisibleApartmentIDs(ctx, scope, query.ApartmentFilter())
	if err != nil {
		s.LogError(ctx, err, "Failed to list visible apartments", slog.String("user_id", identity.UserID))
		return nil, err
	}

	filter := domain.TxnFilter{
		BeforeYear:    query.BeforeYear,
		IncludeRenter: query.IncludeRenter,
	}
	aggregates, err := s.aggregateSources(ctx, apartmentIDs, filter)
	if err != nil {
		return nil, err
	}

	totals := aggregates.grandTotals(apartmentIDs)
	return &totals, nil
}

// collectLines merges the three sources' lines for one scope and orders them
// newest first, line id as the tie-break so equal-dated lines keep a stable
// order across requests.
func (s *invoiceServiceImpl) collectLines(ctx context.Context, scope domain.LineScope, filter domain.TxnFilter) ([]domain.InvoiceLine, error) {
	lines := make([]domain.InvoiceLine, 0)
	for _, source := range []portsrepo.TransactionSource{s.payments, s.serviceRequests, s.utilityReadings} {
		sourceLines, err := source.ListLines(ctx, scope, filter)
		if err != nil {
			s.LogError(ctx, err, "Failed to list transaction lines")
			return nil, err
		}
		lines = append(lines, sourceLines...)
	}
	sort.Slice(lines, func(i, j int) bool {
		if !lines[i].Date.Equal(lines[j].Date) {
			return lines[i].Date.After(lines[j].Date)
		}
		return lines[i].LineID < lines[j].LineID
	})
	return lines, nil
}

// lineTotals computes a detail view's totals from its own lines, so the
// figures always describe exactly the transactions listed.
func lineTotals(lines []domain.InvoiceLine) domain.SummaryTotals {
	totals := domain.NewSummaryTotals()
	for _, line := range lines {
		if line.Source == domain.SourcePayment {
			totals.MoneySpent.Add(line.Currency, line.Amount)
		} else {
			totals.MoneyRequested.Add(line.Currency, line.Amount)
		}
	}
	totals.NetMoney = totals.MoneyRequested.Sub(totals.MoneySpent)
	return totals
}

// ApartmentDetail merges one apartment's transactions into a date-sorted list.
func (s *invoiceServiceImpl) ApartmentDetail(ctx context.Context, identity domain.Identity, apartmentID string, query domain.SummaryQuery) (*domain.ApartmentDetail, error) {
	info, err := requireApartmentView(ctx, s.apartmentRepo, identity, apartmentID)
	if err != nil {
		return nil, err
	}

	scope := domain.LineScope{ApartmentID: &apartmentID}
	lines, err := s.collectLines(ctx, scope, query.TxnFilter())
	if err != nil {
		return nil, err
	}

	return &domain.ApartmentDetail{
		Apartment: *info,
		Lines:     lines,
		Totals:    lineTotals(lines),
	}, nil
}

// canViewUser decides whether the caller may read the subject user's history.
// Users always see themselves; super admins see everyone; village admins see
// users who own or rent inside their village.
func (s *invoiceServiceImpl) canViewUser(ctx context.Context, identity domain.Identity, userID string) (bool, error) {
	if identity.UserID == userID || identity.Role == domain.RoleSuperAdmin {
		return true, nil
	}
	if identity.Role == domain.RoleAdmin {
		if identity.ResponsibleVillageID == nil {
			return true, nil
		}
		return s.userRepo.UserBelongsToVillage(ctx, userID, *identity.ResponsibleVillageID)
	}
	return false, nil
}

// UserDetail merges one user's transactions. Owners see everything touching
// the apartments they own; renters see only transactions they personally
// created, which also means the renter-payer filter cannot hide their own rows.
func (s *invoiceServiceImpl) UserDetail(ctx context.Context, identity domain.Identity, userID string, query domain.SummaryQuery) (*domain.UserDetail, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.canViewUser(ctx, identity, userID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.ErrForbidden
	}

	filter := query.TxnFilter()
	var scope domain.LineScope
	if user.Role == domain.RoleOwner {
		ownedIDs, err := s.apartmentRepo.ListOwnedApartmentIDs(ctx, userID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list owned apartments", slog.String("user_id", userID))
			return nil, err
		}
		if len(ownedIDs) == 0 {
			return &domain.UserDetail{User: *user, Lines: []domain.InvoiceLine{}, Totals: domain.NewSummaryTotals()}, nil
		}
		scope = domain.LineScope{OwnedApartmentIDs: ownedIDs}
	} else {
		scope = domain.LineScope{ActorUserID: &userID}
		filter.IncludeRenter = true
	}

	lines, err := s.collectLines(ctx, scope, filter)
	if err != nil {
		return nil, err
	}

	return &domain.UserDetail{
		User:   *user,
		Lines:  lines,
		Totals: lineTotals(lines),
	}, nil
}
