package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/touristvillage/portfolio_backend/internal/apperrors"
	portssvc "github.com/touristvillage/portfolio_backend/internal/core/ports/services"
	"github.com/touristvillage/portfolio_backend/internal/dto"
	"github.com/touristvillage/portfolio_backend/internal/middleware"
)

// invoiceHandler handles HTTP requests for the invoice aggregation endpoints.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// registerInvoiceRoutes registers all invoice-related routes.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("/summary", h.getApartmentSummary)
		invoices.GET("/summary/previous-years", h.getPreviousYearsTotals)
		invoices.GET("/apartments/:id", h.getApartmentDetail)
		invoices.GET("/apartments/:id/renter-summary", h.getRenterSummary)
		invoices.GET("/users/:id", h.getUserDetail)
	}
}

// bindSummaryQuery binds and validates the shared summary query parameters.
func bindSummaryQuery(c *gin.Context) (*dto.SummaryQueryParams, bool) {
	var params dto.SummaryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return nil, false
	}
	return &params, true
}

// getApartmentSummary godoc
// @Summary Portfolio summary per apartment
// @Description Returns the paginated per-apartment financial summary visible to the caller. Totals cover the entire filtered set, not just the page.
// @Tags invoices
// @Produce json
// @Param village_id query string false "Filter by village"
// @Param phase query int false "Filter by phase"
// @Param user_type query string false "Filter by booking user type (owner or renter)"
// @Param year query int false "Filter transactions to one calendar year"
// @Param date_from query string false "Range start (YYYY-MM-DD), ignored when year is set"
// @Param date_to query string false "Range end (YYYY-MM-DD), inclusive, ignored when year is set"
// @Param search query string false "Search apartments by apartment, owner or village name"
// @Param include_renter query bool false "Include renter-paid transactions"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 50)"
// @Success 200 {object} dto.ApartmentSummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/summary [get]
func (h *invoiceHandler) getApartmentSummary(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	params, ok := bindSummaryQuery(c)
	if !ok {
		return
	}
	query, err := params.ToSummaryQuery()
	if err != nil {
		respondError(c, err, "Failed to parse summary query")
		return
	}

	report, err := h.invoiceService.ApartmentSummary(c.Request.Context(), identity, query)
	if err != nil {
		respondError(c, err, "Failed to compute apartment summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToApartmentSummaryResponse(report))
}

// getPreviousYearsTotals godoc
// @Summary Accumulated totals before a year
// @Description Returns the caller's accumulated position over all transactions dated strictly before Jan 1 of before_year.
// @Tags invoices
// @Produce json
// @Param before_year query int true "Exclusive upper year bound"
// @Param village_id query string false "Filter by village"
// @Param phase query int false "Filter by phase"
// @Param include_renter query bool false "Include renter-paid transactions"
// @Success 200 {object} dto.PreviousYearsTotalsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/summary/previous-years [get]
func (h *invoiceHandler) getPreviousYearsTotals(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	params, ok := bindSummaryQuery(c)
	if !ok {
		return
	}
	if params.BeforeYear == nil {
		respondError(c, apperrors.NewValidationError("before_year is required"), "Failed to parse summary query")
		return
	}
	query, err := params.ToSummaryQuery()
	if err != nil {
		respondError(c, err, "Failed to parse summary query")
		return
	}

	totals, err := h.invoiceService.PreviousYearsTotals(c.Request.Context(), identity, query)
	if err != nil {
		respondError(c, err, "Failed to compute previous years totals")
		return
	}

	c.JSON(http.StatusOK, dto.PreviousYearsTotalsResponse{
		BeforeYear: *params.BeforeYear,
		Totals:     dto.ToTotalsResponse(*totals),
	})
}

// getApartmentDetail godoc
// @Summary Apartment transaction history
// @Description Returns one apartment's merged, date-sorted transactions from all three sources with running totals.
// @Tags invoices
// @Produce json
// @Param id path string true "Apartment ID"
// @Param year query int false "Filter transactions to one calendar year"
// @Param date_from query string false "Range start (YYYY-MM-DD)"
// @Param date_to query string false "Range end (YYYY-MM-DD), inclusive"
// @Param include_renter query bool false "Include renter-paid transactions"
// @Success 200 {object} dto.ApartmentDetailResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/apartments/{id} [get]
func (h *invoiceHandler) getApartmentDetail(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	params, ok := bindSummaryQuery(c)
	if !ok {
		return
	}
	query, err := params.ToSummaryQuery()
	if err != nil {
		respondError(c, err, "Failed to parse summary query")
		return
	}

	detail, err := h.invoiceService.ApartmentDetail(c.Request.Context(), identity, c.Param("id"), query)
	if err != nil {
		respondError(c, err, "Failed to build apartment detail")
		return
	}

	c.JSON(http.StatusOK, dto.ToApartmentDetailResponse(detail))
}

// getUserDetail godoc
// @Summary User transaction history
// @Description Returns one user's merged transactions: owners see everything on apartments they own, renters only what they personally created.
// @Tags invoices
// @Produce json
// @Param id path string true "User ID"
// @Param year query int false "Filter transactions to one calendar year"
// @Param date_from query string false "Range start (YYYY-MM-DD)"
// @Param date_to query string false "Range end (YYYY-MM-DD), inclusive"
// @Success 200 {object} dto.UserDetailResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/users/{id} [get]
func (h *invoiceHandler) getUserDetail(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	params, ok := bindSummaryQuery(c)
	if !ok {
		return
	}
	query, err := params.ToSummaryQuery()
	if err != nil {
		respondError(c, err, "Failed to parse summary query")
		return
	}

	detail, err := h.invoiceService.UserDetail(c.Request.Context(), identity, c.Param("id"), query)
	if err != nil {
		respondError(c, err, "Failed to build user detail")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDetailResponse(detail))
}

// getRenterSummary godoc
// @Summary Renter position for an apartment
// @Description Returns the renter-facing totals anchored on the latest renter booking, falling back to the apartment's dominant renter by payment totals.
// @Tags invoices
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} dto.RenterSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invoices/apartments/{id}/renter-summary [get]
func (h *invoiceHandler) getRenterSummary(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.invoiceService.RenterSummary(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to build renter summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToRenterSummaryResponse(summary))
}
