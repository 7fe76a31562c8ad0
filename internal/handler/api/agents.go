package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "tarifario/internal/handler/dto/response"
	"tarifario/internal/handler/middleware"
	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
)

type AgentHandler struct {
	agentQueries queries.AgentQueries
}

func NewAgentHandler(agentQueries queries.AgentQueries) *AgentHandler {
	return &AgentHandler{agentQueries: agentQueries}
}

// @Summary Search agents
// @Description Proxy a name/email search to the external agent directory
// @Tags agents
// @Produce json
// @Security BearerAuth
// @Param name query string false "Agent name"
// @Param email query string false "Agent email"
// @Success 200 {array} response.AgentResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /agents/search [get]
func (h *AgentHandler) Search(c *gin.Context) {
	operatorID, ok := middleware.GetOperatorID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	name := c.Query("name")
	email := c.Query("email")
	if name == "" && email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Provide a name or email to search",
		})
		return
	}

	agents, err := h.agentQueries.Search(c.Request.Context(), operatorID, name, email)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrGatewayUnavailable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Agent directory unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAgents(agents))
}
