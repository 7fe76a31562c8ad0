//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"tarifario/internal/handler/api"
	resdto "tarifario/internal/handler/dto/response"
	"tarifario/internal/pkg/errs"
	"tarifario/internal/usecase/queries"
	"tarifario/tests/common/httptest"
	queriesmock "tarifario/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AgentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAgentQueries
	handler     *api.AgentHandler
	operatorID  uuid.UUID
}

func (s *AgentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAgentQueries(s.mockCtrl)
	s.handler = api.NewAgentHandler(s.mockQueries)
	s.operatorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("operator_id", s.operatorID)
		c.Next()
	}

	s.router.GET("/agents/search", authMiddleware, s.handler.Search)
}

func (s *AgentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAgentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AgentHandlerTestSuite))
}

func (s *AgentHandlerTestSuite) TestSearch() {
	agents := []queries.Agent{
		{ID: uuid.New(), DisplayName: "Viajes Horizonte", Email: "reservas@viajeshorizonte.example"},
		{ID: uuid.New(), DisplayName: "Horizonte Tours", Email: "info@horizontetours.example"},
	}

	s.Run("success: searches by name", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), s.operatorID, "horizonte", "").
			Return(agents, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agents/search?name=horizonte", nil, "bearer-token")

		var response []resdto.AgentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal(agents[0].ID, response[0].ID)
	})

	s.Run("success: searches by email", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), s.operatorID, "", "reservas@viajeshorizonte.example").
			Return(agents[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agents/search?email=reservas@viajeshorizonte.example", nil, "bearer-token")

		var response []resdto.AgentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: no match returns empty list", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), s.operatorID, "nadie", "").
			Return([]queries.Agent{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agents/search?name=nadie", nil, "bearer-token")

		var response []resdto.AgentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request when neither name nor email is given", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agents/search", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Provide a name or email")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agents/search?name=horizonte", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 502 Bad Gateway when the directory is down", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), s.operatorID, "horizonte", "").
			Return(nil, errs.ErrGatewayUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agents/search?name=horizonte", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "Agent directory unavailable")
	})

	s.Run("error: 500 Internal Server Error on unexpected failure", func() {
		s.mockQueries.EXPECT().Search(gomock.Any(), s.operatorID, "horizonte", "").
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/agents/search?name=horizonte", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
