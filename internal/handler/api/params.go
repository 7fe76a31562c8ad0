package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tarifario/internal/domain/tariff"
)

func parseHotelID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid hotel ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func parseCategory(raw string) (tariff.Category, error) {
	return tariff.ParseCategory(raw)
}
