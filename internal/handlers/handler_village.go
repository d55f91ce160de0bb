package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/touristvillage/portfolio_backend/internal/core/ports/services"
	"github.com/touristvillage/portfolio_backend/internal/dto"
)

// villageHandler handles HTTP requests related to villages.
type villageHandler struct {
	villageService portssvc.VillageSvcFacade
}

// newVillageHandler creates a new villageHandler.
func newVillageHandler(vs portssvc.VillageSvcFacade) *villageHandler {
	return &villageHandler{
		villageService: vs,
	}
}

// registerVillageRoutes registers all village-related routes.
func registerVillageRoutes(rg *gin.RouterGroup, villageService portssvc.VillageSvcFacade) {
	h := newVillageHandler(villageService)

	villages := rg.Group("/villages")
	{
		villages.GET("", h.listVillages)
		villages.GET("/:id", h.getVillage)
	}
}

// listVillages godoc
// @Summary List villages
// @Description Lists villages with their utility unit prices.
// @Tags villages
// @Produce json
// @Param limit query int false "Page size (default 50)"
// @Param offset query int false "Page offset (default 0)"
// @Success 200 {object} dto.ListVillagesResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /villages [get]
func (h *villageHandler) listVillages(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	villages, err := h.villageService.ListVillages(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list villages")
		return
	}

	c.JSON(http.StatusOK, dto.ToListVillagesResponse(villages))
}

// getVillage godoc
// @Summary Get a village by ID
// @Description Retrieves one village with its utility unit prices.
// @Tags villages
// @Produce json
// @Param id path string true "Village ID"
// @Success 200 {object} dto.VillageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /villages/{id} [get]
func (h *villageHandler) getVillage(c *gin.Context) {
	village, err := h.villageService.GetVillageByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve village")
		return
	}

	c.JSON(http.StatusOK, dto.ToVillageResponse(village))
}
