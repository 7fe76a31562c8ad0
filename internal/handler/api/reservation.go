package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "tarifario/internal/handler/dto/request"
	resdto "tarifario/internal/handler/dto/response"
	"tarifario/internal/handler/middleware"
	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/commands"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
}

func NewReservationHandler(reservationCommands commands.ReservationCommands) *ReservationHandler {
	return &ReservationHandler{reservationCommands: reservationCommands}
}

// @Summary Submit reservation
// @Description Allocate the stay and push the night-granular payload to the reservation service
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body request.SubmitReservationRequest true "Reservation data"
// @Success 200 {object} response.SubmissionResponse
// @Success 201 {object} response.SubmissionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) SubmitReservation(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	idempotencyKey, err := h.getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.SubmitReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.reservationCommands.Submit(c.Request.Context(), req.ToInput(), operatorID, idempotencyKey)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrNoTariffConfigured):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "No tariff configured",
			})
		case errors.Is(err, errs.ErrInvalidDateRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
			})
		case errors.Is(err, errs.ErrDuplicateSubmission):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Duplicate submission with different parameters",
			})
		case errors.Is(err, errs.ErrSubmissionInProgress):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Submission is currently being processed",
			})
		case errors.Is(err, errs.ErrSubmissionRejected):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Reservation service rejected the submission",
			})
		case errors.Is(err, errs.ErrDomainValidationFailed):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Reservation validation failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromSubmissionView(result.Submission, result.IsReplayed))
}

func (h *ReservationHandler) getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
