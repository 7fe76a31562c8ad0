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
	"tarifario/tests/common/builder"
	"tarifario/tests/common/httptest"
	"tarifario/tests/common/testutil"
	queriesmock "tarifario/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type QuoteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockQuoteQueries
	handler     *api.QuoteHandler
}

func (s *QuoteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockQuoteQueries(s.mockCtrl)
	s.handler = api.NewQuoteHandler(s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			return
		}
		c.Set("operator_id", uuid.New())
		c.Next()
	}

	s.router.POST("/quotes", authMiddleware, s.handler.BuildQuote)
	s.router.POST("/quotes/export", authMiddleware, s.handler.ExportQuote)
}

func (s *QuoteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(QuoteHandlerTestSuite))
}

// ================================================================================
// TestBuildQuote
// ================================================================================

func (s *QuoteHandlerTestSuite) TestBuildQuote() {
	url := "/quotes"

	rb := builder.NewReservationBuilder().WithNights(3)
	reqBody := rb.BuildQuoteRequestDTO()
	tariffView := builder.NewTariffBuilder().WithHotelID(reqBody.HotelID).BuildView()
	quoteView := rb.BuildQuoteView(tariffView)

	s.Run("success: returns 200 OK with one entry per night", func() {
		s.mockQueries.EXPECT().BuildQuote(gomock.Any(), gomock.Any()).
			Return(quoteView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Nights, 3)
		s.Equal(1, response.Nights[0].Night)
		s.Equal(3, response.Nights[2].Night)
		s.Equal(tariffView.ID, response.Tariff.ID)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		validationCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: hotelId", mutate: testutil.Field("hotelId", nil)},
			{name: "missing field: category", mutate: testutil.Field("category", nil)},
			{name: "missing field: checkIn", mutate: testutil.Field("checkIn", nil)},
			{name: "missing field: checkOut", mutate: testutil.Field("checkOut", nil)},
			{name: "category invalid (triple)", mutate: testutil.Field("category", "triple")},
			{name: "tax kind invalid", mutate: testutil.Field("taxRules", []map[string]any{
				{"name": "IVA", "kind": "percentage", "rate": "0.16", "active": true},
			})},
		}

		for _, tc := range validationCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "hotel not found",
				queriesError:   errs.ErrHotelNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Hotel not found",
			},
			{
				name:           "no tariff configured",
				queriesError:   errs.ErrNoTariffConfigured,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No tariff configured",
			},
			{
				name:           "invalid date range",
				queriesError:   errs.ErrInvalidDateRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Check-out must be after check-in",
			},
			{
				name:           "domain validation failed",
				queriesError:   errs.ErrDomainValidationFailed,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Quote validation failed",
			},
			{
				name:           "internal server error",
				queriesError:   errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().BuildQuote(gomock.Any(), gomock.Any()).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestExportQuote
// ================================================================================

func (s *QuoteHandlerTestSuite) TestExportQuote() {
	url := "/quotes/export"

	rb := builder.NewReservationBuilder()
	reqBody := rb.BuildQuoteRequestDTO()

	s.Run("success: returns workbook bytes with attachment headers", func() {
		export := &queries.QuoteExport{
			Filename: "quote_hotel-es-colonial_2026-03-01.xlsx",
			Content:  []byte("workbook-bytes"),
		}
		s.mockQueries.EXPECT().ExportQuote(gomock.Any(), gomock.Any()).
			Return(export, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
		s.Equal(`attachment; filename="quote_hotel-es-colonial_2026-03-01.xlsx"`, rec.Header().Get("Content-Disposition"))
		s.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
		s.Equal("workbook-bytes", rec.Body.String())
	})

	s.Run("error: 404 Not Found when no tariff configured", func() {
		s.mockQueries.EXPECT().ExportQuote(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrNoTariffConfigured).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No tariff configured")
	})

	s.Run("error: 400 Bad Request for invalid date range", func() {
		s.mockQueries.EXPECT().ExportQuote(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Check-out must be after check-in")
	})
}
