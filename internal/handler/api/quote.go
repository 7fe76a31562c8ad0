package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "tarifario/internal/handler/dto/request"
	resdto "tarifario/internal/handler/dto/response"
	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
)

type QuoteHandler struct {
	quoteQueries queries.QuoteQueries
}

func NewQuoteHandler(quoteQueries queries.QuoteQueries) *QuoteHandler {
	return &QuoteHandler{quoteQueries: quoteQueries}
}

// @Summary Build quote
// @Description Resolve the applicable tariff and allocate costs and taxes per night
// @Tags quotes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.QuoteRequest true "Quote parameters"
// @Success 200 {object} response.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quotes [post]
func (h *QuoteHandler) BuildQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.quoteQueries.BuildQuote(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}

	resp, err := resdto.FromQuoteView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Export quote
// @Description Build the quote and return it as an xlsx workbook
// @Tags quotes
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param request body request.QuoteRequest true "Quote parameters"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /quotes/export [post]
func (h *QuoteHandler) ExportQuote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	export, err := h.quoteQueries.ExportQuote(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		export.Content)
}

func (h *QuoteHandler) respondQuoteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrHotelNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Hotel not found",
		})
	case errors.Is(err, errs.ErrNoTariffConfigured):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No tariff configured",
		})
	case errors.Is(err, errs.ErrInvalidDateRange):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Check-out must be after check-in",
		})
	case errors.Is(err, errs.ErrDomainValidationFailed):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Quote validation failed",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
