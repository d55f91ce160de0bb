package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/touristvillage/portfolio_backend/internal/core/domain"
	portssvc "github.com/touristvillage/portfolio_backend/internal/core/ports/services"
	"github.com/touristvillage/portfolio_backend/internal/dto"
	"github.com/touristvillage/portfolio_backend/internal/middleware"
)

// apartmentHandler handles HTTP requests related to apartments.
type apartmentHandler struct {
	apartmentService portssvc.ApartmentSvcFacade
}

// newApartmentHandler creates a new apartmentHandler.
func newApartmentHandler(as portssvc.ApartmentSvcFacade) *apartmentHandler {
	return &apartmentHandler{
		apartmentService: as,
	}
}

// registerApartmentRoutes registers all apartment-related routes.
func registerApartmentRoutes(rg *gin.RouterGroup, apartmentService portssvc.ApartmentSvcFacade) {
	h := newApartmentHandler(apartmentService)

	apartments := rg.Group("/apartments")
	{
		apartments.GET("", h.listApartments)
		apartments.GET("/:id", h.getApartment)
	}
}

// listApartments godoc
// @Summary List apartments
// @Description Lists the apartments visible to the caller.
// @Tags apartments
// @Produce json
// @Param village_id query string false "Filter by village"
// @Param phase query int false "Filter by phase"
// @Param search query string false "Search by apartment, owner or village name"
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} dto.ListApartmentsResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /apartments [get]
func (h *apartmentHandler) listApartments(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var listParams dto.ListParams
	if err := c.ShouldBindQuery(&listParams); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	var filterParams dto.SummaryQueryParams
	if err := c.ShouldBindQuery(&filterParams); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.ApartmentFilter{
		VillageID: filterParams.VillageID,
		Phase:     filterParams.Phase,
		Search:    filterParams.Search,
	}
	apartments, err := h.apartmentService.ListApartments(c.Request.Context(), identity, filter, listParams.Limit, listParams.Offset)
	if err != nil {
		respondError(c, err, "Failed to list apartments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListApartmentsResponse(apartments))
}

// getApartment godoc
// @Summary Get an apartment by ID
// @Description Retrieves one apartment the caller may see.
// @Tags apartments
// @Produce json
// @Param id path string true "Apartment ID"
// @Success 200 {object} dto.ApartmentResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /apartments/{id} [get]
func (h *apartmentHandler) getApartment(c *gin.Context) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	apartment, err := h.apartmentService.GetApartmentByID(c.Request.Context(), identity, c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve apartment")
		return
	}

	c.JSON(http.StatusOK, dto.ToApartmentResponse(apartment))
}
