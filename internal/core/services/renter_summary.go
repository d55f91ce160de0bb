package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/touristvillage/portfolio_backend/internal/apperrors"
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// RenterSummary resolves the renter-facing position of one apartment. The
// most recent renter booking anchors it when one exists; otherwise the
// apartment's history is grouped per renter and the dominant contributor by
// payment totals is reported.
func (s *invoiceServiceImpl) RenterSummary(ctx context.Context, identity domain.Identity, apartmentID string) (*domain.RenterSummary, error) {
	if _, err := requireApartmentView(ctx, s.apartmentRepo, identity, apartmentID); err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.FindLatestRenterBooking(ctx, apartmentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.renterSummaryFallback(ctx, apartmentID)
		}
		s.LogError(ctx, err, "Failed to find renter booking", slog.String("apartment_id", apartmentID))
		return nil, err
	}

	filter := domain.TxnFilter{
		BookingID:     &booking.BookingID,
		IncludeRenter: true,
	}
	aggregates, err := s.aggregateSources(ctx, []string{apartmentID}, filter)
	if err != nil {
		return nil, err
	}

	return &domain.RenterSummary{
		ApartmentID: apartmentID,
		Booking:     booking,
		RenterID:    booking.UserID,
		RenterName:  booking.UserName,
		Totals:      aggregates.totalsFor(apartmentID),
	}, nil
}

// renterSummaryFallback groups the apartment's renter-paid history per user
// and reports the dominant renter: largest payment total (EGP before GBP),
// then largest request total, then the lowest user id for a stable result.
func (s *invoiceServiceImpl) renterSummaryFallback(ctx context.Context, apartmentID string) (*domain.RenterSummary, error) {
	paymentShares, err := s.payments.AggregateByRenter(ctx, apartmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to group payments by renter", slog.String("apartment_id", apartmentID))
		return nil, err
	}
	requestShares, err := s.serviceRequests.AggregateByRenter(ctx, apartmentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to group service requests by renter", slog.String("apartment_id", apartmentID))
		return nil, err
	}

	byUser := make(map[string]*domain.RenterContribution)
	merge := func(shares []domain.RenterContribution) {
		for _, share := range shares {
			c, ok := byUser[share.UserID]
			if !ok {
				c = &domain.RenterContribution{
					UserID:   share.UserID,
					UserName: share.UserName,
					Payments: domain.NewMoneyByCurrency(),
					Requests: domain.NewMoneyByCurrency(),
				}
				byUser[share.UserID] = c
			}
			c.Payments.AddAll(share.Payments)
			c.Requests.AddAll(share.Requests)
		}
	}
	merge(paymentShares)
	merge(requestShares)

	if len(byUser) == 0 {
		return nil, apperrors.ErrNotFound
	}

	contributions := make([]*domain.RenterContribution, 0, len(byUser))
	for _, c := range byUser {
		contributions = append(contributions, c)
	}
	sort.Slice(contributions, func(i, j int) bool {
		a, b := contributions[i], contributions[j]
		for _, currency := range domain.Currencies {
			if cmp := a.Payments.Get(currency).Cmp(b.Payments.Get(currency)); cmp != 0 {
				return cmp > 0
			}
		}
		for _, currency := range domain.Currencies {
			if cmp := a.Requests.Get(currency).Cmp(b.Requests.Get(currency)); cmp != 0 {
				return cmp > 0
			}
		}
		return a.UserID < b.UserID
	})
	dominant := contributions[0]

	totals := domain.NewSummaryTotals()
	totals.MoneySpent.AddAll(dominant.Payments)
	totals.MoneyRequested.AddAll(dominant.Requests)
	totals.NetMoney = totals.MoneyRequested.Sub(totals.MoneySpent)

	return &domain.RenterSummary{
		ApartmentID: apartmentID,
		RenterID:    dominant.UserID,
		RenterName:  dominant.UserName,
		Totals:      totals,
	}, nil
}
