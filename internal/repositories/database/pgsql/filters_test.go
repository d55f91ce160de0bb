package pgsql

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

func datePtr(t *testing.T, value string) *time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("bad date literal %q: %v", value, err)
	}
	return &parsed
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func TestApplyTxnFilter(t *testing.T) {
	from := datePtr(t, "2024-03-01")
	to := datePtr(t, "2024-06-30")

	tests := []struct {
		name       string
		filter     domain.TxnFilter
		wantClause string
		wantArgs   []any
	}{
		{
			// The default payer filter drops renter-paid rows only; owner,
			// company and legacy NULL payers all stay in.
			name:       "default excludes renter-paid rows",
			filter:     domain.TxnFilter{},
			wantClause: " WHERE LOWER(COALESCE(p.user_type, 'owner')) <> 'renter'",
			wantArgs:   nil,
		},
		{
			name:       "include_renter drops the payer condition",
			filter:     domain.TxnFilter{IncludeRenter: true},
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "year filter",
			filter:     domain.TxnFilter{Year: intPtr(2024), IncludeRenter: true},
			wantClause: " WHERE EXTRACT(YEAR FROM p.paid_at) = $1",
			wantArgs:   []any{2024},
		},
		{
			name: "year wins over date range",
			filter: domain.TxnFilter{
				Year:          intPtr(2024),
				DateFrom:      from,
				DateTo:        to,
				IncludeRenter: true,
			},
			wantClause: " WHERE EXTRACT(YEAR FROM p.paid_at) = $1",
			wantArgs:   []any{2024},
		},
		{
			name: "date range when no year is set",
			filter: domain.TxnFilter{
				DateFrom:      from,
				DateTo:        to,
				IncludeRenter: true,
			},
			wantClause: " WHERE p.paid_at >= $1 AND p.paid_at <= $2",
			wantArgs:   []any{*from, *to},
		},
		{
			name:       "before_year is a strict upper bound",
			filter:     domain.TxnFilter{BeforeYear: intPtr(2023), IncludeRenter: true},
			wantClause: " WHERE EXTRACT(YEAR FROM p.paid_at) < $1",
			wantArgs:   []any{2023},
		},
		{
			name:       "booking scope",
			filter:     domain.TxnFilter{BookingID: strPtr("booking-1"), IncludeRenter: true},
			wantClause: " WHERE booking_id = $1",
			wantArgs:   []any{"booking-1"},
		},
		{
			name:   "default payer filter composes with dates",
			filter: domain.TxnFilter{Year: intPtr(2025)},
			wantClause: " WHERE EXTRACT(YEAR FROM p.paid_at) = $1" +
				" AND LOWER(COALESCE(p.user_type, 'owner')) <> 'renter'",
			wantArgs: []any{2025},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &whereBuilder{}
			applyTxnFilter(w, "p.paid_at", "p.user_type", tt.filter)
			assert.Equal(t, tt.wantClause, w.clause())
			assert.Equal(t, tt.wantArgs, w.args)
		})
	}
}

func TestApplyScope(t *testing.T) {
	tests := []struct {
		name       string
		scope      domain.ApartmentScope
		wantClause string
		wantArgs   []any
	}{
		{
			name:       "unrestricted scope adds nothing",
			scope:      domain.ApartmentScope{},
			wantClause: "",
			wantArgs:   nil,
		},
		{
			name:       "owner scope",
			scope:      domain.ApartmentScope{OwnerID: strPtr("owner-1")},
			wantClause: " WHERE a.owner_id = $1",
			wantArgs:   []any{"owner-1"},
		},
		{
			name:  "renter scope requires a booking",
			scope: domain.ApartmentScope{BookedByUserID: strPtr("renter-1")},
			wantClause: " WHERE EXISTS (SELECT 1 FROM bookings b" +
				" WHERE b.apartment_id = a.apartment_id AND b.user_id = $1)",
			wantArgs: []any{"renter-1"},
		},
		{
			name:       "village admin scope",
			scope:      domain.ApartmentScope{VillageID: strPtr("village-1")},
			wantClause: " WHERE a.village_id = $1",
			wantArgs:   []any{"village-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &whereBuilder{}
			applyScope(w, tt.scope)
			assert.Equal(t, tt.wantClause, w.clause())
			assert.Equal(t, tt.wantArgs, w.args)
		})
	}
}

func TestApplyApartmentFilter_Search(t *testing.T) {
	w := &whereBuilder{}
	applyApartmentFilter(w, domain.ApartmentFilter{Search: "palm"})

	assert.Equal(t, " WHERE (a.name ILIKE $1 OR o.name ILIKE $1 OR v.name ILIKE $1)", w.clause())
	assert.Equal(t, []any{"%palm%"}, w.args)
}
