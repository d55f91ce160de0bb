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

type PgxServiceRequestRepository struct {
	BaseRepository
}

func newPgxServiceRequestRepository(pool *pgxpool.Pool) portsrepo.ServiceRequestRepositoryFacade {
	return &PgxServiceRequestRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxServiceRequestRepository implements the facade
var _ portsrepo.ServiceRequestRepositoryFacade = (*PgxServiceRequestRepository)(nil)

// effectiveDate is the date a request counts under: the action date when one
// is recorded, otherwise creation time.
const srEffectiveDate = "COALESCE(action_at, created_at)"

// AggregateByApartment sums service request costs per apartment and currency
// in one query over the whole apartment set.
func (r *PgxServiceRequestRepository) AggregateByApartment(ctx context.Context, apartmentIDs []string, filter domain.TxnFilter) (map[string]domain.MoneyByCurrency, error) {
	result := make(map[string]domain.MoneyByCurrency)
	if len(apartmentIDs) == 0 {
		return result, nil
	}

	w := &whereBuilder{}
	w.add("apartment_id = ANY(" + w.arg(apartmentIDs) + ")")
	applyTxnFilter(w, srEffectiveDate, "who_pays", filter)

	query := `
		SELECT apartment_id, UPPER(currency) AS currency, SUM(cost) AS total
		FROM service_requests` + w.clause() + `
		GROUP BY apartment_id, UPPER(currency);`

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate service requests: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var apartmentID, rawCurrency string
		var total decimal.Decimal
		if err := rows.Scan(&apartmentID, &rawCurrency, &total); err != nil {
			return nil, fmt.Errorf("failed to scan service request aggregate row: %w", err)
		}
		currency, err := domain.ParseCurrency(rawCurrency)
		if err != nil {
			return nil, fmt.Errorf("service request aggregate for apartment %s: %w", apartmentID, err)
		}
		ledger, ok := result[apartmentID]
		if !ok {
			ledger = domain.NewMoneyByCurrency()
			result[apartmentID] = ledger
		}
		ledger.Add(currency, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service request aggregates: %w", err)
	}
	return result, nil
}

// ListLines returns service requests in the scope as normalized invoice
// lines. The person on a line is the requester.
func (r *PgxServiceRequestRepository) ListLines(ctx context.Context, scope domain.LineScope, filter domain.TxnFilter) ([]domain.InvoiceLine, error) {
	w := &whereBuilder{}
	switch {
	case scope.ApartmentID != nil:
		w.add("sr.apartment_id = " + w.arg(*scope.ApartmentID))
	case len(scope.OwnedApartmentIDs) > 0:
		w.add("sr.apartment_id = ANY(" + w.arg(scope.OwnedApartmentIDs) + ")")
	case scope.ActorUserID != nil:
		w.add("sr.requester_id = " + w.arg(*scope.ActorUserID))
	default:
		return nil, nil
	}
	applyTxnFilter(w, "COALESCE(sr.action_at, sr.created_at)", "sr.who_pays", filter)

	query := `
		SELECT sr.service_request_id, sr.apartment_id, sr.booking_id, sr.requester_id,
		       sr.description, sr.cost, sr.currency, sr.who_pays, sr.action_at,
		       sr.created_at, u.name
		FROM service_requests sr
		JOIN users u ON u.user_id = sr.requester_id` + w.clause() + `;`

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list service request lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.InvoiceLine
	for rows.Next() {
		var m models.ServiceRequest
		var personName string
		if err := rows.Scan(&m.ServiceRequestID, &m.ApartmentID, &m.BookingID, &m.RequesterID, &m.Description, &m.Cost, &m.Currency, &m.WhoPays, &m.ActionAt, &m.CreatedAt, &personName); err != nil {
			return nil, fmt.Errorf("failed to scan service request line: %w", err)
		}
		request, err := mapping.ToDomainServiceRequest(m)
		if err != nil {
			return nil, fmt.Errorf("service request line %s: %w", m.ServiceRequestID, err)
		}
		lines = append(lines, domain.InvoiceLine{
			LineID:      string(domain.SourceServiceRequest) + "_" + request.ServiceRequestID,
			Source:      domain.SourceServiceRequest,
			Description: request.Description,
			Amount:      request.Cost,
			Currency:    request.Currency,
			Date:        request.EffectiveDate(),
			BookingID:   request.BookingID,
			PersonName:  personName,
			PayerRole:   request.PayerRole,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service request lines: %w", err)
	}
	return lines, nil
}

// AggregateByRenter sums the apartment's service request costs per renter
// requester, for the renter summary fallback. The renter is resolved through
// the requesting user's role.
func (r *PgxServiceRequestRepository) AggregateByRenter(ctx context.Context, apartmentID string) ([]domain.RenterContribution, error) {
	query := `
		SELECT u.user_id, u.name, UPPER(sr.currency) AS currency, SUM(sr.cost) AS total
		FROM service_requests sr
		JOIN users u ON u.user_id = sr.requester_id
		WHERE sr.apartment_id = $1
		  AND LOWER(u.role) = 'renter'
		GROUP BY u.user_id, u.name, UPPER(sr.currency)
		ORDER BY u.user_id;`

	rows, err := r.Pool.Query(ctx, query, apartmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate service requests by renter: %w", err)
	}
	defer rows.Close()

	byUser := make(map[string]*domain.RenterContribution)
	var order []string
	for rows.Next() {
		var userID, userName, rawCurrency string
		var total decimal.Decimal
		if err := rows.Scan(&userID, &userName, &rawCurrency, &total); err != nil {
			return nil, fmt.Errorf("failed to scan renter service request aggregate: %w", err)
		}
		currency, err := domain.ParseCurrency(rawCurrency)
		if err != nil {
			return nil, fmt.Errorf("renter service request aggregate for user %s: %w", userID, err)
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
		contribution.Requests.Add(currency, total)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating renter service request aggregates: %w", err)
	}

	contributions := make([]domain.RenterContribution, 0, len(order))
	for _, userID := range order {
		contributions = append(contributions, *byUser[userID])
	}
	return contributions, nil
}
