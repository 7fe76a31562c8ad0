//go:build e2e

package tariff_test

import (
	"fmt"
	"net/http"
	"testing"

	"tarifario/internal/handler/dto/response"
	"tarifario/tests/common/builder"
	"tarifario/tests/common/dbtest"
	"tarifario/tests/common/httptest"
	"tarifario/tests/e2e"
	"tarifario/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	hotelsURL            = "/api/hotels"
	hotelTariffsURL      = "/api/hotels/%s/tariffs"
	generalTariffURL     = "/api/hotels/%s/tariffs/general"
	preferentialURL      = "/api/hotels/%s/tariffs/preferential"
	resolveTariffURL     = "/api/hotels/%s/tariffs/resolve?category=%s"
	resolveWithAgentURL  = "/api/hotels/%s/tariffs/resolve?category=%s&agentId=%s"
	removePreferentialURL = "/api/hotels/%s/tariffs/preferential?category=%s&agentId=%s"
)

type TariffSuite struct {
	e2e.SharedSuite
	auth *helper.AuthHelper
}

func (s *TariffSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.auth = helper.NewAuthHelper(s.Config.JWT)
}

func (s *TariffSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestTariffSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(TariffSuite))
}

// =============================================================================
// TestTariffLifecycle - general and preferential rates over the HTTP API
// =============================================================================

func (s *TariffSuite) TestTariffLifecycle() {
	s.Run("Normal case: general upsert, preferential override, fallback after removal", func() {
		t := s.T()

		_, token := s.auth.LoginOperator(t, "Back Office Operator")
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Hotel Es Colonial", "Oaxaca")

		// General rate
		generalReq := builder.NewTariffBuilder().BuildUpsertGeneralRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(generalTariffURL, hotelID), generalReq, token)
		require.Equal(t, http.StatusOK, w.Code, "general upsert should succeed: %s", w.Body.String())

		var general response.TariffResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &general))
		require.Equal(t, "general", general.Scope)
		require.Nil(t, general.AgentID)

		// Preferential rate for the directory-known agent
		prefReq := builder.NewTariffBuilder().
			WithAgent(e2e.StubAgent.ID).
			BuildUpsertPreferentialRequestDTO()
		prefReq.Agent.Name = e2e.StubAgent.DisplayName
		prefReq.Agent.Email = e2e.StubAgent.Email

		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(preferentialURL, hotelID), prefReq, token)
		require.Equal(t, http.StatusOK, w.Code, "preferential upsert should succeed: %s", w.Body.String())

		var pref response.TariffResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &pref))
		require.Equal(t, "preferential", pref.Scope)
		require.NotNil(t, pref.AgentID)
		require.Equal(t, e2e.StubAgent.ID, *pref.AgentID)

		// Both rates listed
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(hotelTariffsURL, hotelID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var listed []response.TariffResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &listed))
		require.Len(t, listed, 2)

		// Resolution prefers the agent rate, falls back to general without one
		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(resolveWithAgentURL, hotelID, "double", e2e.StubAgent.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		var resolved response.TariffResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resolved))
		require.Equal(t, "preferential", resolved.Scope)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(resolveTariffURL, hotelID, "double"), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resolved))
		require.Equal(t, "general", resolved.Scope)

		// Removing the preferential rate restores the general fallback
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf(removePreferentialURL, hotelID, "double", e2e.StubAgent.ID), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(resolveWithAgentURL, hotelID, "double", e2e.StubAgent.ID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &resolved))
		require.Equal(t, "general", resolved.Scope)
	})

	s.Run("Normal case: re-upsert replaces the existing rate in place", func() {
		t := s.T()

		_, token := s.auth.LoginOperator(t, "Back Office Operator")
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Hotel Es Colonial", "Oaxaca")

		first := builder.NewTariffBuilder().BuildUpsertGeneralRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(generalTariffURL, hotelID), first, token)
		require.Equal(t, http.StatusOK, w.Code)

		second := builder.NewTariffBuilder().BuildUpsertGeneralRequestDTO()
		second.Room.Comments = "renegotiated rate"
		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(generalTariffURL, hotelID), second, token)
		require.Equal(t, http.StatusOK, w.Code)

		var updated response.TariffResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "renegotiated rate", updated.Room.Comments)

		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "tariffs"), "upsert must not create a second row")
	})

	s.Run("Error case: preferential upsert rejected when directory has no match", func() {
		t := s.T()

		_, token := s.auth.LoginOperator(t, "Back Office Operator")
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Hotel Es Colonial", "Oaxaca")

		req := builder.NewTariffBuilder().
			WithAgent(uuid.New()). // ID the directory does not know
			BuildUpsertPreferentialRequestDTO()
		req.Agent.Name = "Agencia Fantasma"
		req.Agent.Email = "nadie@fantasma.example"

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(preferentialURL, hotelID), req, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Agent not found")

		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "tariffs"))
	})

	s.Run("Error case: upsert against an unknown hotel returns 404", func() {
		t := s.T()

		_, token := s.auth.LoginOperator(t, "Back Office Operator")

		req := builder.NewTariffBuilder().BuildUpsertGeneralRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf(generalTariffURL, uuid.New()), req, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Hotel not found")
	})

	s.Run("Error case: resolution with no configured tariff returns 404", func() {
		t := s.T()

		_, token := s.auth.LoginOperator(t, "Back Office Operator")
		hotelID := dbtest.CreateTestHotel(t, s.DB, "Hotel Es Colonial", "Oaxaca")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf(resolveTariffURL, hotelID, "double"), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})
}

// =============================================================================
// TestHotelEndpoints - hotel creation and retrieval
// =============================================================================

func (s *TariffSuite) TestHotelEndpoints() {
	s.Run("Normal case: create then fetch a hotel", func() {
		t := s.T()

		_, token := s.auth.LoginOperator(t, "Back Office Operator")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, hotelsURL,
			map[string]string{"name": "Hotel Es Colonial", "destination": "Oaxaca"}, token)
		require.Equal(t, http.StatusCreated, w.Code, "hotel creation should succeed: %s", w.Body.String())

		var created response.HotelResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEqual(t, uuid.Nil, created.ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			hotelsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var fetched response.HotelResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &fetched))
		require.Equal(t, created.ID, fetched.ID)
		require.Equal(t, "Hotel Es Colonial", fetched.Name)
		require.Equal(t, "Oaxaca", fetched.Destination)
	})

	s.Run("Normal case: agent search proxies the external directory", func() {
		t := s.T()

		_, token := s.auth.LoginOperator(t, "Back Office Operator")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/agents/search?name=Horizonte", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var agents []response.AgentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &agents))
		require.Len(t, agents, 1)
		require.Equal(t, e2e.StubAgent.ID, agents[0].ID)
		require.Equal(t, e2e.StubAgent.Email, agents[0].Email)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			"/api/agents/search?name=Fantasma", nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &agents))
		require.Empty(t, agents)
	})

	s.Run("Error case: request without a token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, hotelsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})
}
