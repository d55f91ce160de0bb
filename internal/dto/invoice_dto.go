package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/touristvillage/portfolio_backend/internal/apperrors"
	"github.com/touristvillage/portfolio_backend/internal/core/domain"
)

const dateParamLayout = "2006-01-02"

// SummaryQueryParams defines the query parameters shared by the invoice
// summary and detail endpoints.
type SummaryQueryParams struct {
	VillageID     *string `form:"village_id"`
	Phase         *int    `form:"phase" binding:"omitempty,min=0"`
	UserType      *string `form:"user_type" binding:"omitempty,oneof=owner renter"`
	Year          *int    `form:"year" binding:"omitempty,min=1970,max=2200"`
	DateFrom      *string `form:"date_from" binding:"omitempty,dateparam"`
	DateTo        *string `form:"date_to" binding:"omitempty,dateparam"`
	BeforeYear    *int    `form:"before_year" binding:"omitempty,min=1970,max=2200"`
	Search        string  `form:"search"`
	IncludeRenter bool    `form:"include_renter"`
	Page          int     `form:"page,default=1" binding:"omitempty,min=1"`
	Limit         int     `form:"limit,default=50" binding:"omitempty,min=1"`
}

// ToSummaryQuery validates the raw parameters and builds the domain query.
// Year and the date range are mutually exclusive; when both arrive, year wins
// and the range is dropped. date_to is widened to the end of its day so the
// range is inclusive on both edges.
func (p SummaryQueryParams) ToSummaryQuery() (domain.SummaryQuery, error) {
	query := domain.SummaryQuery{
		VillageID:     p.VillageID,
		Phase:         p.Phase,
		Year:          p.Year,
		BeforeYear:    p.BeforeYear,
		Search:        p.Search,
		IncludeRenter: p.IncludeRenter,
		Page:          p.Page,
		Limit:         p.Limit,
	}

	if p.UserType != nil {
		userType, err := domain.ParseBookingUserType(*p.UserType)
		if err != nil {
			return domain.SummaryQuery{}, apperrors.NewValidationError(err.Error())
		}
		query.UserType = &userType
	}

	if p.Year == nil {
		if p.DateFrom != nil {
			from, err := time.Parse(dateParamLayout, *p.DateFrom)
			if err != nil {
				return domain.SummaryQuery{}, apperrors.NewValidationError("date_from must be formatted as YYYY-MM-DD")
			}
			query.DateFrom = &from
		}
		if p.DateTo != nil {
			to, err := time.Parse(dateParamLayout, *p.DateTo)
			if err != nil {
				return domain.SummaryQuery{}, apperrors.NewValidationError("date_to must be formatted as YYYY-MM-DD")
			}
			endOfDay := to.Add(24*time.Hour - time.Nanosecond)
			query.DateTo = &endOfDay
		}
		if query.DateFrom != nil && query.DateTo != nil && query.DateTo.Before(*query.DateFrom) {
			return domain.SummaryQuery{}, apperrors.NewValidationError("date_to must not be before date_from")
		}
	}

	return query, nil
}

// TotalsResponse is the serialized form of per-currency totals. Every
// supported currency is always present, zero when nothing accrued.
type TotalsResponse struct {
	MoneySpent     domain.MoneySnapshot `json:"moneySpent"`
	MoneyRequested domain.MoneySnapshot `json:"moneyRequested"`
	NetMoney       domain.MoneySnapshot `json:"netMoney"`
}

// ToTotalsResponse converts domain totals to their response DTO
func ToTotalsResponse(totals domain.SummaryTotals) TotalsResponse {
	return TotalsResponse{
		MoneySpent:     totals.MoneySpent.Snapshot(),
		MoneyRequested: totals.MoneyRequested.Snapshot(),
		NetMoney:       totals.NetMoney.Snapshot(),
	}
}

// ApartmentSummaryRowResponse represents one apartment's row in the summary
type ApartmentSummaryRowResponse struct {
	ApartmentID   string `json:"apartmentID"`
	ApartmentName string `json:"apartmentName"`
	VillageName   string `json:"villageName"`
	OwnerID       string `json:"ownerID"`
	OwnerName     string `json:"ownerName"`
	Phase         int    `json:"phase"`
	TotalsResponse
}

// PaginationResponse describes the page window of a summary response
type PaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ApartmentSummaryResponse represents the paginated portfolio summary
type ApartmentSummaryResponse struct {
	Apartments []ApartmentSummaryRowResponse `json:"apartments"`
	Totals     TotalsResponse                `json:"totals"`
	Pagination PaginationResponse            `json:"pagination"`
}

// ToApartmentSummaryResponse converts the domain report to its response DTO
func ToApartmentSummaryResponse(report *domain.ApartmentSummaryReport) ApartmentSummaryResponse {
	rows := make([]ApartmentSummaryRowResponse, len(report.Rows))
	for i, row := range report.Rows {
		rows[i] = ApartmentSummaryRowResponse{
			ApartmentID:    row.ApartmentID,
			ApartmentName:  row.ApartmentName,
			VillageName:    row.VillageName,
			OwnerID:        row.OwnerID,
			OwnerName:      row.OwnerName,
			Phase:          row.Phase,
			TotalsResponse: ToTotalsResponse(row.SummaryTotals),
		}
	}
	return ApartmentSummaryResponse{
		Apartments: rows,
		Totals:     ToTotalsResponse(report.Totals),
		Pagination: PaginationResponse{
			Page:       report.Pagination.Page,
			Limit:      report.Pagination.Limit,
			Total:      report.Pagination.Total,
			TotalPages: report.Pagination.TotalPages,
		},
	}
}

// PreviousYearsTotalsResponse represents the accumulated position before a year
type PreviousYearsTotalsResponse struct {
	BeforeYear int            `json:"beforeYear"`
	Totals     TotalsResponse `json:"totals"`
}

// InvoiceLineResponse represents one normalized transaction in a detail view
type InvoiceLineResponse struct {
	LineID      string          `json:"lineID"`
	Source      string          `json:"source"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency"`
	Date        time.Time       `json:"date"`
	BookingID   *string         `json:"bookingID,omitempty"`
	PersonName  string          `json:"personName,omitempty"`
	PayerRole   string          `json:"payerRole"`
}

// ToInvoiceLineResponses converts domain invoice lines to their response DTOs
func ToInvoiceLineResponses(lines []domain.InvoiceLine) []InvoiceLineResponse {
	responses := make([]InvoiceLineResponse, len(lines))
	for i, line := range lines {
		responses[i] = InvoiceLineResponse{
			LineID:      line.LineID,
			Source:      string(line.Source),
			Description: line.Description,
			Amount:      line.Amount,
			Currency:    string(line.Currency),
			Date:        line.Date,
			BookingID:   line.BookingID,
			PersonName:  line.PersonName,
			PayerRole:   string(line.PayerRole),
		}
	}
	return responses
}

// ApartmentDetailResponse represents one apartment's merged transaction history
type ApartmentDetailResponse struct {
	Apartment    ApartmentResponse     `json:"apartment"`
	Transactions []InvoiceLineResponse `json:"transactions"`
	Totals       TotalsResponse        `json:"totals"`
}

// ToApartmentDetailResponse converts the domain detail to its response DTO
func ToApartmentDetailResponse(detail *domain.ApartmentDetail) ApartmentDetailResponse {
	return ApartmentDetailResponse{
		Apartment:    ToApartmentResponse(&detail.Apartment),
		Transactions: ToInvoiceLineResponses(detail.Lines),
		Totals:       ToTotalsResponse(detail.Totals),
	}
}

// UserDetailResponse represents one user's merged transaction history
type UserDetailResponse struct {
	User         UserResponse          `json:"user"`
	Transactions []InvoiceLineResponse `json:"transactions"`
	Totals       TotalsResponse        `json:"totals"`
}

// ToUserDetailResponse converts the domain detail to its response DTO
func ToUserDetailResponse(detail *domain.UserDetail) UserDetailResponse {
	return UserDetailResponse{
		User:         ToUserResponse(&detail.User),
		Transactions: ToInvoiceLineResponses(detail.Lines),
		Totals:       ToTotalsResponse(detail.Totals),
	}
}

// RenterBookingResponse is the booking that anchored a renter summary
type RenterBookingResponse struct {
	BookingID   string    `json:"bookingID"`
	ArrivalDate time.Time `json:"arrivalDate"`
	LeavingDate time.Time `json:"leavingDate"`
	Status      string    `json:"status"`
}

// RenterSummaryResponse represents the renter-facing position of one apartment
type RenterSummaryResponse struct {
	ApartmentID string                 `json:"apartmentID"`
	Booking     *RenterBookingResponse `json:"booking,omitempty"`
	RenterID    string                 `json:"renterID"`
	RenterName  string                 `json:"renterName"`
	Totals      TotalsResponse         `json:"totals"`
}

// ToRenterSummaryResponse converts the domain renter summary to its response DTO
func ToRenterSummaryResponse(summary *domain.RenterSummary) RenterSummaryResponse {
	response := RenterSummaryResponse{
		ApartmentID: summary.ApartmentID,
		RenterID:    summary.RenterID,
		RenterName:  summary.RenterName,
		Totals:      ToTotalsResponse(summary.Totals),
	}
	if summary.Booking != nil {
		response.Booking = &RenterBookingResponse{
			BookingID:   summary.Booking.BookingID,
			ArrivalDate: summary.Booking.ArrivalDate,
			LeavingDate: summary.Booking.LeavingDate,
			Status:      summary.Booking.Status,
		}
	}
	return response
}
