package pgsql

import (
	"fmt"
	"strings"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

// whereBuilder accumulates AND-ed conditions with positional arguments.
// Every repository query goes through it so scope and filter constraints are
// composed the same way everywhere.
type whereBuilder struct {
	conds []string
	args  []any
}

// arg registers a query argument and returns its placeholder ($1, $2, ...).
func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

// add appends a ready-made condition.
func (w *whereBuilder) add(cond string) {
	w.conds = append(w.conds, cond)
}

// clause renders " WHERE ..." or an empty string when unconstrained.
func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// applyTxnFilter adds the date and payer constraints of a TxnFilter.
// dateCol is the source's effective date column expression and payerCol its
// raw payer role column; legacy rows may carry NULL or mixed-case payer
// values, so the owner default and case folding happen right here in SQL,
// mirroring domain.ParsePayerRole. The default payer filter drops only
// renter-paid rows; owner and company stay in.
func applyTxnFilter(w *whereBuilder, dateCol, payerCol string, f domain.TxnFilter) {
	switch {
	case f.Year != nil:
		w.add(fmt.Sprintf("EXTRACT(YEAR FROM %s) = %s", dateCol, w.arg(*f.Year)))
	default:
		if f.DateFrom != nil {
			w.add(fmt.Sprintf("%s >= %s", dateCol, w.arg(*f.DateFrom)))
		}
		if f.DateTo != nil {
			w.add(fmt.Sprintf("%s <= %s", dateCol, w.arg(*f.DateTo)))
		}
	}
	if f.BeforeYear != nil {
		w.add(fmt.Sprintf("EXTRACT(YEAR FROM %s) < %s", dateCol, w.arg(*f.BeforeYear)))
	}
	if !f.IncludeRenter {
		w.add(fmt.Sprintf("LOWER(COALESCE(%s, 'owner')) <> 'renter'", payerCol))
	}
	if f.BookingID != nil {
		w.add("booking_id = " + w.arg(*f.BookingID))
	}
}

// applyScope adds the caller's visibility constraints to an apartment query.
// Alias "a" must refer to the apartments table.
func applyScope(w *whereBuilder, scope domain.ApartmentScope) {
	if scope.OwnerID != nil {
		w.add("a.owner_id = " + w.arg(*scope.OwnerID))
	}
	if scope.BookedByUserID != nil {
		w.add(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM bookings b WHERE b.apartment_id = a.apartment_id AND b.user_id = %s)",
			w.arg(*scope.BookedByUserID)))
	}
	if scope.VillageID != nil {
		w.add("a.village_id = " + w.arg(*scope.VillageID))
	}
}

// applyApartmentFilter adds the request-level apartment filters. Aliases "a",
// "v" and "o" must refer to apartments, villages and the owner users row.
func applyApartmentFilter(w *whereBuilder, f domain.ApartmentFilter) {
	if f.VillageID != nil {
		w.add("a.village_id = " + w.arg(*f.VillageID))
	}
	if f.Phase != nil {
		w.add("a.phase = " + w.arg(*f.Phase))
	}
	if f.UserType != nil {
		w.add(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM bookings b WHERE b.apartment_id = a.apartment_id AND LOWER(b.user_type) = %s)",
			w.arg(string(*f.UserType))))
	}
	if f.Search != "" {
		pattern := w.arg("%" + f.Search + "%")
		w.add(fmt.Sprintf("(a.name ILIKE %s OR o.name ILIKE %s OR v.name ILIKE %s)",
			pattern, pattern, pattern))
	}
}
