package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portsrepo "github.com/touristvillage/portfolio_backend/internal/core/ports/repositories"
	"github.com/touristvillage/portfolio_backend/internal/models"
	"github.com/touristvillage/portfolio_backend/internal/utils/mapping"
)

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// AggregateByApartment sums payments per apartment and currency in one query
// over the whole apartment set.
func (r *PgxPaymentRepository) AggregateByApartment(ctx context.Context, apartmentIDs []string, filter domain.TxnFilter) (map[string]domain.MoneyByCurrency, error) {
	result := make(map[string]domain.MoneyByCurrency)
	if len(apartmentIDs) == 0 {
		return result, nil
	}

	w := &whereBuilder{}
	w.add("apartment_id = ANY(" + w.arg(apartmentIDs) + ")")
	applyTxnFilter(w, "paid_at", "user_type", filter)

	query := `
		SELECT apartment_id, UPPER(currency) AS currency, SUM(amount) AS total
		FROM payments` + w.clause() + `
		GROUP BY apartment_id, UPPER(currency);`

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var apartmentID, rawCurrency string
		var total decimal.Decimal
		if err := rows.Scan(&apartmentID, &rawCurrency, &total); err != nil {
			return nil, fmt.Errorf("failed to scan payment aggregate row: %w", err)
		}
		currency, err := domain.ParseCurrency(rawCurrency)
		if err != nil {
			return nil, fmt.Errorf("payment aggregate for apartment %s: %w", apartmentID, err)
		}
		ledger, ok := result[apartmentID]
		if !ok {
			ledger = domain.NewMoneyByCurrency()
			result[apartmentID] = ledger
		}
		ledger.Add(currency, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment aggregates: %w", err)
	}
	return result, nil
}

// ListLines returns payments in the scope as normalized invoice lines. The
// person on a payment line is the user who recorded it.
func (r *PgxPaymentRepository) ListLines(ctx context.Context, scope domain.LineScope, filter domain.TxnFilter) ([]domain.InvoiceLine, error) {
	w := &whereBuilder{}
	switch {
	case scope.ApartmentID != nil:
		w.add("p.apartment_id = " + w.arg(*scope.ApartmentID))
	case len(scope.OwnedApartmentIDs) > 0:
		w.add("p.apartment_id = ANY(" + w.arg(scope.OwnedApartmentIDs) + ")")
	case scope.ActorUserID != nil:
		w.add("p.created_by = " + w.arg(*scope.ActorUserID))
	default:
		return nil, nil
	}
	applyTxnFilter(w, "p.paid_at", "p.user_type", filter)

	query := `
		SELECT p.payment_id, p.apartment_id, p.booking_id, p.amount, p.currency,
		       p.paid_at, p.user_type, u.name
		FROM payments p
		JOIN users u ON u.user_id = p.created_by` + w.clause() + `;`

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payment lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.InvoiceLine
	for rows.Next() {
		var m models.Payment
		var personName string
		if err := rows.Scan(&m.PaymentID, &m.ApartmentID, &m.BookingID, &m.Amount, &m.Currency, &m.PaidAt, &m.PayerRole, &personName); err != nil {
			return nil, fmt.Errorf("failed to scan payment line: %w", err)
		}
		payment, err := mapping.ToDomainPayment(m)
		if err != nil {
			return nil, fmt.Errorf("payment line %s: %w", m.PaymentID, err)
		}
		lines = append(lines, domain.InvoiceLine{
			LineID:      string(domain.SourcePayment) + "_" + payment.PaymentID,
			Source:      domain.SourcePayment,
			Description: "Payment",
			Amount:      payment.Amount,
			Currency:    payment.Currency,
			Date:        payment.PaidAt,
			BookingID:   payment.BookingID,
			PersonName:  personName,
			PayerRole:   payment.PayerRole,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment lines: %w", err)
	}
	return lines, nil
}

// AggregateByRenter sums the apartment's renter-paid payments per recording
// user, for the renter summary fallback.
func (r *PgxPaymentRepository) AggregateByRenter(ctx context.Context, apartmentID string) ([]domain.RenterContribution, error) {
	query := `
		SELECT u.user_id, u.name, UPPER(p.currency) AS currency, SUM(p.amount) AS total
		FROM payments p
		JOIN users u ON u.user_id = p.created_by
		WHERE p.apartment_id = $1
		  AND LOWER(COALESCE(p.user_type, 'owner')) = 'renter'
		GROUP BY u.user_id, u.name, UPPER(p.currency)
		ORDER BY u.user_id;`

	rows, err := r.Pool.Query(ctx, query, apartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payments by renter: %w", err)
	}
	defer rows.Close()

	byUser := make(map[string]*domain.RenterContribution)
	var order []string
	for rows.Next() {
		var userID, userName, rawCurrency string
		var total decimal.Decimal
		if err := rows.Scan(&userID, &userName, &rawCurrency, &total); err != nil {
			return nil, fmt.Errorf("failed to scan renter payment aggregate: %w", err)
		}
		currency, err := domain.ParseCurrency(rawCurrency)
		if err != nil {
			return nil, fmt.Errorf("renter payment aggregate for user %s: %w", userID, err)
		}
		contribution, ok := byUser[userID]
		if !ok {
			contribution = &domain.RenterContribution{
				UserID:   userID,
				UserName: userName,
				Payments: domain.NewMoneyByCurrency(),
				Requests: domain.NewMoneyByCurrency(),
			}
			byUser[userID] = contribution
			order = append(order, userID)
		}
		contribution.Payments.Add(currency, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating renter payment aggregates: %w", err)
	}

	contributions := make([]domain.RenterContribution, 0, len(order))
	for _, userID := range order {
		contributions = append(contributions, *byUser[userID])
	}
	return contributions, nil
}
