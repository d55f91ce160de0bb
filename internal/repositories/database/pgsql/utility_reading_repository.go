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
	"github.com/touristvillage/portfolio_backend/internal/utils/metering"
)

type PgxUtilityReadingRepository struct {
	BaseRepository
	meterMax decimal.Decimal
}

func newPgxUtilityReadingRepository(pool *pgxpool.Pool, meterMax decimal.Decimal) portsrepo.UtilityReadingRepositoryFacade {
	return &PgxUtilityReadingRepository{
		BaseRepository: BaseRepository{Pool: pool},
		meterMax:       meterMax,
	}
}

// Ensure PgxUtilityReadingRepository implements the facade
var _ portsrepo.UtilityReadingRepositoryFacade = (*PgxUtilityReadingRepository)(nil)

// meterUsageSQL renders the rollover-aware usage expression for one meter,
// mirroring metering.Usage: missing readings contribute nothing, and an end
// below its start means the counter wrapped exactly once.
func meterUsageSQL(startCol, endCol, maxPlaceholder string) string {
	return fmt.Sprintf(`CASE
		WHEN %[1]s IS NULL OR %[2]s IS NULL THEN 0
		WHEN %[2]s >= %[1]s THEN %[2]s - %[1]s
		ELSE (%[3]s - %[1]s) + %[2]s
	END`, startCol, endCol, maxPlaceholder)
}

// AggregateByApartment derives utility costs per apartment in one query:
// usage per meter priced at the owning village's unit rates. Contributions
// are always EGP.
func (r *PgxUtilityReadingRepository) AggregateByApartment(ctx context.Context, apartmentIDs []string, filter domain.TxnFilter) (map[string]domain.MoneyByCurrency, error) {
	result := make(map[string]domain.MoneyByCurrency)
	if len(apartmentIDs) == 0 {
		return result, nil
	}

	w := &whereBuilder{}
	maxPlaceholder := w.arg(r.meterMax)
	w.add("ur.apartment_id = ANY(" + w.arg(apartmentIDs) + ")")
	applyTxnFilter(w, "ur.created_at", "ur.who_pays", filter)

	waterUsage := meterUsageSQL("ur.water_start_reading", "ur.water_end_reading", maxPlaceholder)
	electricityUsage := meterUsageSQL("ur.electricity_start_reading", "ur.electricity_end_reading", maxPlaceholder)

	query := fmt.Sprintf(`
		SELECT ur.apartment_id,
		       SUM((%s) * v.water_price + (%s) * v.electricity_price) AS total
		FROM utility_readings ur
		JOIN apartments a ON a.apartment_id = ur.apartment_id
		JOIN villages v ON v.village_id = a.village_id%s
		GROUP BY ur.apartment_id;`, waterUsage, electricityUsage, w.clause())

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate utility readings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var apartmentID string
		var total decimal.Decimal
		if err := rows.Scan(&apartmentID, &total); err != nil {
			return nil, fmt.Errorf("failed to scan utility aggregate row: %w", err)
		}
		ledger := domain.NewMoneyByCurrency()
		ledger.Add(domain.EGP, total)
		result[apartmentID] = ledger
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating utility aggregates: %w", err)
	}
	return result, nil
}

// ListLines returns utility readings in the scope as invoice lines, pricing
// each reading through the metering calculator.
func (r *PgxUtilityReadingRepository) ListLines(ctx context.Context, scope domain.LineScope, filter domain.TxnFilter) ([]domain.InvoiceLine, error) {
	w := &whereBuilder{}
	switch {
	case scope.ApartmentID != nil:
		w.add("ur.apartment_id = " + w.arg(*scope.ApartmentID))
	case len(scope.OwnedApartmentIDs) > 0:
		w.add("ur.apartment_id = ANY(" + w.arg(scope.OwnedApartmentIDs) + ")")
	case scope.ActorUserID != nil:
		w.add("ur.created_by = " + w.arg(*scope.ActorUserID))
	default:
		return nil, nil
	}
	applyTxnFilter(w, "ur.created_at", "ur.who_pays", filter)

	query := `
		SELECT ur.utility_reading_id, ur.apartment_id, ur.booking_id,
		       ur.water_start_reading, ur.water_end_reading,
		       ur.electricity_start_reading, ur.electricity_end_reading,
		       ur.who_pays, ur.created_at, u.name,
		       v.water_price, v.electricity_price
		FROM utility_readings ur
		JOIN apartments a ON a.apartment_id = ur.apartment_id
		JOIN villages v ON v.village_id = a.village_id
		JOIN users u ON u.user_id = ur.created_by` + w.clause() + `;`

	rows, err := r.Pool.Query(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list utility reading lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.InvoiceLine
	for rows.Next() {
		var (
			m                models.UtilityReading
			personName       string
			waterPrice       decimal.Decimal
			electricityPrice decimal.Decimal
		)
		if err := rows.Scan(
			&m.UtilityReadingID, &m.ApartmentID, &m.BookingID,
			&m.WaterStart, &m.WaterEnd,
			&m.ElectricityStart, &m.ElectricityEnd,
			&m.WhoPays, &m.CreatedAt, &personName,
			&waterPrice, &electricityPrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan utility reading line: %w", err)
		}

		reading, err := mapping.ToDomainUtilityReading(m)
		if err != nil {
			return nil, fmt.Errorf("utility reading line %s: %w", m.UtilityReadingID, err)
		}

		waterUsage := metering.Usage(reading.WaterStart, reading.WaterEnd, r.meterMax)
		electricityUsage := metering.Usage(reading.ElectricityStart, reading.ElectricityEnd, r.meterMax)
		cost := metering.Cost(waterUsage, waterPrice).Add(metering.Cost(electricityUsage, electricityPrice))

		lines = append(lines, domain.InvoiceLine{
			LineID: string(domain.SourceUtilityReading) + "_" + reading.UtilityReadingID,
			Source: domain.SourceUtilityReading,
			Description: fmt.Sprintf("Utility reading (water %s, electricity %s)",
				waterUsage.String(), electricityUsage.String()),
			Amount:     cost,
			Currency:   domain.EGP,
			Date:       reading.CreatedAt,
			BookingID:  reading.BookingID,
			PersonName: personName,
			PayerRole:  reading.PayerRole,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating utility reading lines: %w", err)
	}
	return lines, nil
}
