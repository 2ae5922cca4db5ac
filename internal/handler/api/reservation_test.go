//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"fieldbook/internal/domain/admin"
	"fieldbook/internal/handler/api"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"
	"fieldbook/tests/common/builder"
	"fieldbook/tests/common/httptest"
	"fieldbook/tests/common/testutil"
	commandsmock "fieldbook/tests/mock/commands"
	queriesmock "fieldbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("admin_id", uuid.New())
		c.Set("admin_role", admin.RoleManager)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.CreateReservation)
	s.router.GET("/reservations", authMiddleware, s.handler.ListReservations)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.GetReservation)
	s.router.DELETE("/reservations/:id", authMiddleware, s.handler.CancelReservation)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

func (s *ReservationHandlerTestSuite) TestCreateReservation() {
	url := "/reservations"

	reqBuilder := builder.NewReservationBuilder()
	reqBody := reqBuilder.BuildCreateRequestDTO()
	returnView := reqBuilder.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody).
			Return(returnView, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.TotalPriceCent, response.TotalPriceCent)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("error: 401 Unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		missing := []testCaseReservation{
			{name: "missing field: resource_id (required)", mutate: testutil.Field("resource_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: customer_id (required)", mutate: testutil.Field("customer_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start_time (required)", mutate: testutil.Field("start_time", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: duration_min (required)", mutate: testutil.Field("duration_min", nil), expectCode: http.StatusBadRequest},
		}

		malformed := []testCaseReservation{
			{name: "zero duration", mutate: testutil.Field("duration_min", 0), expectCode: http.StatusBadRequest},
			{name: "non-uuid resource_id", mutate: testutil.Field("resource_id", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "non-timestamp start_time", mutate: testutil.Field("start_time", "tomorrow"), expectCode: http.StatusBadRequest},
		}

		for _, testCaseGroup := range [][]testCaseReservation{missing, malformed} {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
				})
			}
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "resource not found",
				commandsError:  commands.ErrResourceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Resource not found",
			},
			{
				name:           "customer not found",
				commandsError:  commands.ErrCustomerNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Customer not found",
			},
			{
				name:           "invalid time slot",
				commandsError:  commands.ErrInvalidTimeSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid time slot",
			},
			{
				name:           "resource not bookable",
				commandsError:  commands.ErrResourceNotBookable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not accepting bookings",
			},
			{
				name:           "slot conflict",
				commandsError:  commands.ErrReservationConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "conflicts with an existing reservation",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), reqBody).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestCancelReservation() {
	reservationID := uuid.New()
	url := "/reservations/" + reservationID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), reservationID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reservation not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "already cancelled",
				commandsError:  commands.ErrAlreadyCancelled,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already cancelled",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelReservation(gomock.Any(), reservationID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGetReservation() {
	returnView := builder.NewReservationBuilder().BuildView()
	url := "/reservations/" + returnView.ID.String()

	s.Run("success: returns reservation view", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.ResourceName, response.ResourceName)
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(nil, errors.New("no rows")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

func (s *ReservationHandlerTestSuite) TestListReservations() {
	item := &queries.ReservationListItem{
		ID:             uuid.New(),
		ResourceID:     uuid.New(),
		ResourceName:   "court A",
		CustomerName:   "Aoi Tanaka",
		DurationMin:    90,
		TotalPriceCent: 900,
		Status:         "active",
	}

	s.Run("success: lists all reservations", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Nil(), gomock.Nil(), 0).
			Return([]*queries.ReservationListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(item.ID, response[0].ID)
	})

	s.Run("success: filters by resource", func() {
		s.mockQueries.EXPECT().ListByResource(gomock.Any(), item.ResourceID, 10).
			Return([]*queries.ReservationListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations?resource_id="+item.ResourceID.String()+"&limit=10", nil, "bearer-token")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: filters by customer", func() {
		customerID := uuid.New()
		s.mockQueries.EXPECT().ListByCustomer(gomock.Any(), customerID, 0).
			Return([]*queries.ReservationListItem{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/reservations?customer_id="+customerID.String(), nil, "bearer-token")

		var response []resdto.ReservationListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 400 Bad Request on malformed filters", func() {
		testCases := []struct {
			name string
			path string
		}{
			{name: "bad resource id", path: "/reservations?resource_id=nope"},
			{name: "bad customer id", path: "/reservations?customer_id=nope"},
			{name: "bad from timestamp", path: "/reservations?from=yesterday"},
			{name: "bad to timestamp", path: "/reservations?to=tomorrow"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})
}
