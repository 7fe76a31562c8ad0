package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "tarifario/internal/handler/dto/request"
	resdto "tarifario/internal/handler/dto/response"
	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/commands"
	"tarifario/internal/usecase/queries"
)

type TariffHandler struct {
	tariffCommands commands.TariffCommands
	tariffQueries  queries.TariffQueries
}

func NewTariffHandler(tariffCommands commands.TariffCommands, tariffQueries queries.TariffQueries) *TariffHandler {
	return &TariffHandler{
		tariffCommands: tariffCommands,
		tariffQueries:  tariffQueries,
	}
}

// @Summary Upsert general tariff
// @Description Create or replace the hotel-wide rate for a room category
// @Tags tariffs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body request.UpsertGeneralTariffRequest true "Tariff data"
// @Success 200 {object} response.TariffResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /hotels/{id}/tariffs/general [put]
func (h *TariffHandler) UpsertGeneral(c *gin.Context) {
	hotelID, ok := parseHotelID(c)
	if !ok {
		return
	}

	var req reqdto.UpsertGeneralTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.tariffCommands.UpsertGeneral(c.Request.Context(), hotelID, req.ToDraftInput())
	if err != nil {
		h.respondUpsertError(c, err)
		return
	}

	h.respondTariff(c, view)
}

// @Summary Upsert preferential tariff
// @Description Create or replace an agent-specific rate for a room category
// @Tags tariffs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body request.UpsertPreferentialTariffRequest true "Tariff data"
// @Success 200 {object} response.TariffResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /hotels/{id}/tariffs/preferential [put]
func (h *TariffHandler) UpsertPreferential(c *gin.Context) {
	hotelID, ok := parseHotelID(c)
	if !ok {
		return
	}

	var req reqdto.UpsertPreferentialTariffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.tariffCommands.UpsertPreferential(c.Request.Context(), hotelID, req.ToAgentRef(), req.ToDraftInput())
	if err != nil {
		h.respondUpsertError(c, err)
		return
	}

	h.respondTariff(c, view)
}

// @Summary Remove preferential tariff
// @Description Remove an agent-specific rate; absent entries are a no-op
// @Tags tariffs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param category query string true "Room category"
// @Param agentId query string true "Agent ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /hotels/{id}/tariffs/preferential [delete]
func (h *TariffHandler) RemovePreferential(c *gin.Context) {
	hotelID, ok := parseHotelID(c)
	if !ok {
		return
	}

	var query reqdto.DeletePreferentialTariffQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	err := h.tariffCommands.RemovePreferential(c.Request.Context(), hotelID, query.Category, query.AgentID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrTariffValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid tariff parameters",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List tariffs
// @Description List all tariffs configured for a hotel
// @Tags tariffs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {array} response.TariffResponse
// @Failure 400 {object} map[string]string
// @Router /hotels/{id}/tariffs [get]
func (h *TariffHandler) ListTariffs(c *gin.Context) {
	hotelID, ok := parseHotelID(c)
	if !ok {
		return
	}

	views, err := h.tariffQueries.ListByHotel(c.Request.Context(), hotelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	resp, err := resdto.FromTariffViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Resolve tariff
// @Description Resolve the applicable tariff for a category and optional agent
// @Tags tariffs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param category query string true "Room category"
// @Param agentId query string false "Agent ID"
// @Success 200 {object} response.TariffResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /hotels/{id}/tariffs/resolve [get]
func (h *TariffHandler) ResolveTariff(c *gin.Context) {
	hotelID, ok := parseHotelID(c)
	if !ok {
		return
	}

	category, err := parseCategory(c.Query("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room category",
		})
		return
	}

	var agentID *uuid.UUID
	if raw := c.Query("agentId"); raw != "" {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid agent ID format",
			})
			return
		}
		agentID = &id
	}

	view, err := h.tariffQueries.Resolve(c.Request.Context(), hotelID, category, agentID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoTariffConfigured):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No tariff configured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	h.respondTariff(c, view)
}

func (h *TariffHandler) respondTariff(c *gin.Context, view *queries.TariffView) {
	resp, err := resdto.FromTariffView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TariffHandler) respondUpsertError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hotel not found",
		})
	case errors.Is(err, errs.ErrUnknownAgent):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Agent not found in directory",
		})
	case errors.Is(err, errs.ErrTariffValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Tariff validation failed",
		})
	case errors.Is(err, errs.ErrGatewayUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Agent directory unavailable",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
