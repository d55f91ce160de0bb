package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineSource identifies which transaction source an invoice line came from.
type LineSource string

const (
	SourcePayment        LineSource = "payment"
	SourceServiceRequest LineSource = "service_request"
	SourceUtilityReading LineSource = "utility_reading"
)

// InvoiceLine is a single normalized transaction in a detail view. It is
// derived at read time and never persisted.
type InvoiceLine struct {
	// LineID is the source row's id prefixed by its source type, e.g.
	// "payment_<uuid>", so ids stay unique across the merged list.
	LineID      string          `json:"lineID"`
	Source      LineSource      `json:"source"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    Currency        `json:"currency"`
	Date        time.Time       `json:"date"`
	BookingID   *string         `json:"bookingID,omitempty"`
	PersonName  string          `json:"personName,omitempty"`
	PayerRole   PayerRole       `json:"payerRole"`
}

// TxnFilter narrows which transactions a source adapter considers. Year and
// the DateFrom/DateTo range are mutually exclusive; Year wins when both are
// set. BeforeYear restricts to transactions dated strictly before Jan 1 of
// that year.
type TxnFilter struct {
	Year       *int
	DateFrom   *time.Time
	DateTo     *time.Time
	BeforeYear *int
	// IncludeRenter widens the payer scope: false (the default) keeps only
	// transactions whose resolved payer role is owner.
	IncludeRenter bool
	// BookingID scopes to transactions tied to one booking.
	BookingID *string
}

// LineScope selects which entity a detail listing is for. Exactly one of the
// fields is set.
type LineScope struct {
	// ApartmentID lists every transaction of one apartment.
	ApartmentID *string
	// OwnedApartmentIDs lists transactions across all apartments a user owns.
	OwnedApartmentIDs []string
	// ActorUserID lists only transactions the user personally created or
	// requested (renter/tenant view).
	ActorUserID *string
}

// SummaryQuery carries the validated filters for summary operations.
type SummaryQuery struct {
	VillageID     *string
	Phase         *int
	UserType      *BookingUserType // existence filter on bookings
	Year          *int
	DateFrom      *time.Time
	DateTo        *time.Time
	BeforeYear    *int
	Search        string
	IncludeRenter bool
	Page          int
	Limit         int
}

// TxnFilter projects the query's transaction-level filters.
func (q SummaryQuery) TxnFilter() TxnFilter {
	f := TxnFilter{
		BeforeYear:    q.BeforeYear,
		IncludeRenter: q.IncludeRenter,
	}
	if q.Year != nil {
		f.Year = q.Year
		return f
	}
	f.DateFrom = q.DateFrom
	f.DateTo = q.DateTo
	return f
}

// ApartmentFilter projects the query's apartment-level filters.
func (q SummaryQuery) ApartmentFilter() ApartmentFilter {
	return ApartmentFilter{
		VillageID: q.VillageID,
		Phase:     q.Phase,
		UserType:  q.UserType,
		Search:    q.Search,
	}
}

// ApartmentFilter narrows the visible apartment set beyond the caller's scope.
type ApartmentFilter struct {
	VillageID *string
	Phase     *int
	UserType  *BookingUserType
	Search    string
}

// SummaryTotals is the per-currency financial position of one apartment, one
// user, or a whole filtered set.
type SummaryTotals struct {
	MoneySpent     MoneyByCurrency `json:"moneySpent"`
	MoneyRequested MoneyByCurrency `json:"moneyRequested"`
	NetMoney       MoneyByCurrency `json:"netMoney"`
}

// NewSummaryTotals returns zeroed totals.
func NewSummaryTotals() SummaryTotals {
	return SummaryTotals{
		MoneySpent:     NewMoneyByCurrency(),
		MoneyRequested: NewMoneyByCurrency(),
		NetMoney:       NewMoneyByCurrency(),
	}
}

// ApartmentSummaryRow is one apartment's line in the portfolio summary.
type ApartmentSummaryRow struct {
	ApartmentID   string
	ApartmentName string
	VillageName   string
	OwnerID       string
	OwnerName     string
	Phase         int
	SummaryTotals
}

// Pagination describes the window a summary page covers.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ApartmentSummaryReport is the paginated portfolio summary. Totals cover the
// entire filtered set regardless of the page window.
type ApartmentSummaryReport struct {
	Rows       []ApartmentSummaryRow
	Totals     SummaryTotals
	Pagination Pagination
}

// ApartmentDetail is the merged, date-sorted transaction history of one
// apartment together with its running totals.
type ApartmentDetail struct {
	Apartment ApartmentInfo
	Lines     []InvoiceLine
	Totals    SummaryTotals
}

// UserDetail is the merged transaction history visible to or about one user.
type UserDetail struct {
	User   User
	Lines  []InvoiceLine
	Totals SummaryTotals
}

// RenterSummary is the "who pays" view of one apartment: either the most
// recent renter booking's transactions, or the dominant renter found by
// aggregating the apartment's history.
type RenterSummary struct {
	ApartmentID string
	// Booking is set when an active renter booking anchored the summary.
	Booking *Booking
	// RenterID/RenterName identify the renter the summary is about.
	RenterID   string
	RenterName string
	Totals     SummaryTotals
}

// RenterContribution is one renter's share of an apartment's history, used by
// the fallback path of the renter summary.
type RenterContribution struct {
	UserID   string
	UserName string
	Payments MoneyByCurrency
	Requests MoneyByCurrency
}
