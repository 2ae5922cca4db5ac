//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"fieldbook/internal/handler/api"
	"fieldbook/internal/usecase/queries"
	"fieldbook/tests/common/httptest"
	queriesmock "fieldbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IncomeHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockIncomeQueries
}

func (s *IncomeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockIncomeQueries(s.mockCtrl)
	handler := api.NewIncomeHandler(s.mockQueries)

	s.router.GET("/income", handler.GetReport)
	s.router.GET("/income/popular", handler.GetPopularResources)
	s.router.GET("/income/audit", handler.GetAuditTotal)
}

func (s *IncomeHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIncomeHandlerSuite(t *testing.T) {
	suite.Run(t, new(IncomeHandlerTestSuite))
}

// envelope shape written by httperr.AbortWithError
type incomeErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail *queries.AuditCheck `json:"detail"`
}

func (s *IncomeHandlerTestSuite) TestGetReport() {
	s.Run("success: returns the aggregated report", func() {
		report := &queries.IncomeReport{GrandTotalCent: 1500}
		s.mockQueries.EXPECT().Report(gomock.Any(), gomock.Nil(), gomock.Nil()).
			Return(report, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/income", nil, "")

		var response queries.IncomeReport
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1500), response.GrandTotalCent)
	})

	s.Run("error: 400 Bad Request on malformed time filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/income?from=yesterday", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)

		var body incomeErrorBody
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Contains(body.Error.Message, "'from'")
	})
}

func (s *IncomeHandlerTestSuite) TestGetAuditTotal() {
	s.Run("success: reconciled fee log answers 200 with zero drift", func() {
		check := &queries.AuditCheck{GrandTotalCent: 900, AuditTotalCent: 900, DriftCent: 0}
		s.mockQueries.EXPECT().VerifyAudit(gomock.Any()).Return(check, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/income/audit", nil, "")

		var response queries.AuditCheck
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(0), response.DriftCent)
	})

	s.Run("error: drift is surfaced as a consistency fault with both totals", func() {
		check := &queries.AuditCheck{GrandTotalCent: 89910, AuditTotalCent: 900, DriftCent: 89010}
		s.mockQueries.EXPECT().VerifyAudit(gomock.Any()).
			Return(check, queries.ErrAuditMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/income/audit", nil, "")
		s.Equal(http.StatusInternalServerError, rec.Code)

		var body incomeErrorBody
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &body))
		s.Equal("Income and fee log totals diverged", body.Error.Message)
		s.Require().NotNil(body.Detail)
		s.Equal(int64(89010), body.Detail.DriftCent)
	})
}

func (s *IncomeHandlerTestSuite) TestGetPopularResources() {
	s.Run("success: returns the ranking", func() {
		rows := []*queries.ResourcePopularity{
			{ResourceName: "court A", ReservationCount: 3},
			{ResourceName: "court B", ReservationCount: 1},
		}
		s.mockQueries.EXPECT().TopResources(gomock.Any(), 0).Return(rows, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/income/popular", nil, "")

		var response []*queries.ResourcePopularity
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("court A", response[0].ResourceName)
	})
}
