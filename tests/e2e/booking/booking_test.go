//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"fieldbook/internal/handler/dto/response"
	"fieldbook/internal/usecase/queries"
	"fieldbook/tests/common/authtest"
	"fieldbook/tests/common/builder"
	"fieldbook/tests/common/dbtest"
	"fieldbook/tests/common/httptest"
	"fieldbook/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	resourcesURL    = "/api/resources"
	incomeURL       = "/api/income"
	auditURL        = "/api/income/audit"
)

type BookingSuite struct {
	e2e.SharedSuite
}

func (s *BookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) TestCreateReservation() {
	s.Run("Normal case: manager books a resource and the fee is frozen", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "court A", 10)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Aoi Tanaka")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "front.desk", "manager")

		reqBody := builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithCustomerID(customerID).
			WithStart(time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC)).
			WithDurationMin(90).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var actualRes response.ReservationResponse
		err := httptest.DecodeResponseBody(t, w.Body, &actualRes)
		require.NoError(t, err)

		expected := &response.ReservationResponse{
			ResourceID:     resourceID,
			ResourceName:   "court A",
			CustomerID:     customerID,
			CustomerName:   "Aoi Tanaka",
			StartTime:      time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC),
			DurationMin:    90,
			TotalPriceCent: 900,
			Status:         "active",
			Note:           "weekly practice",
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actualRes, opts...); diff != "" {
			t.Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}

		// The booked total is frozen for the fee log, but income is
		// recomputed at the current price on every read
		_, err = s.DB.Exec(t.Context(), "UPDATE resources SET price_per_min_cent = 999 WHERE id = $1", resourceID)
		require.NoError(t, err)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+actualRes.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		var refetched response.ReservationResponse
		err = httptest.DecodeResponseBody(t, dw.Body, &refetched)
		require.NoError(t, err)
		require.Equal(t, int64(900), refetched.TotalPriceCent, "booked total must stay frozen at booking time price")

		iw := httptest.PerformRequest(t, s.Router, http.MethodGet, incomeURL, nil, token)
		require.Equal(t, http.StatusOK, iw.Code)

		var report queries.IncomeReport
		err = httptest.DecodeResponseBody(t, iw.Body, &report)
		require.NoError(t, err)
		require.Equal(t, int64(90*999), report.GrandTotalCent, "income must be recomputed at the current price")

		// The fee log kept the old amount, so the cross-check now surfaces the drift
		aw := httptest.PerformRequest(t, s.Router, http.MethodGet, auditURL, nil, token)
		require.Equal(t, http.StatusInternalServerError, aw.Code, aw.Body.String())
	})

	s.Run("Error case: overlapping slot on the same resource is rejected", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "court A", 10)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Aoi Tanaka")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "front.desk", "manager")

		base := builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithCustomerID(customerID).
			WithStart(time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC)).
			WithDurationMin(90)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, base.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// 19:00 intrudes into the 18:00 + 90min slot
		overlapping := base.WithStart(time.Date(2026, 7, 1, 19, 0, 0, 0, time.UTC)).BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, overlapping, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// 19:30 abuts the half-open slot end and must be allowed
		abutting := base.WithStart(time.Date(2026, 7, 1, 19, 30, 0, 0, time.UTC)).BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, abutting, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// A different resource is free at the contested time
		otherResourceID := dbtest.CreateTestResource(t, s.DB, "court B", 10)
		other := base.WithResourceID(otherResourceID).WithStart(time.Date(2026, 7, 1, 19, 0, 0, 0, time.UTC)).BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, other, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func (s *BookingSuite) TestCancelReservation() {
	s.Run("Normal case: cancelling frees the slot for rebooking", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "court A", 10)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Aoi Tanaka")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "front.desk", "manager")

		reqBody := builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithCustomerID(customerID).
			BuildCreateRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		err := httptest.DecodeResponseBody(t, w.Body, &created)
		require.NoError(t, err)

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		// Cancelling twice is a conflict
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())

		// The slot is free again
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})
}

func (s *BookingSuite) TestIncomeReport() {
	s.Run("Normal case: income counts active reservations and reconciles with the fee log", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "court A", 10)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Aoi Tanaka")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "front.desk", "manager")

		base := builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithCustomerID(customerID).
			WithStart(time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC)).
			WithDurationMin(90)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, base.BuildCreateRequestDTO(), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		second := base.WithStart(time.Date(2026, 7, 2, 18, 0, 0, 0, time.UTC)).WithDurationMin(60).BuildCreateRequestDTO()
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, second, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var secondCreated response.ReservationResponse
		err := httptest.DecodeResponseBody(t, w.Body, &secondCreated)
		require.NoError(t, err)

		// 900 + 600 active
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, incomeURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var report queries.IncomeReport
		err = httptest.DecodeResponseBody(t, w.Body, &report)
		require.NoError(t, err)
		require.Equal(t, int64(1500), report.GrandTotalCent)
		require.Len(t, report.PerResource, 1)
		require.Equal(t, int64(2), report.PerResource[0].ReservationCount)

		// Cancellation drops it from income but stays reconciled in the fee log
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+secondCreated.ID.String(), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, incomeURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
		err = httptest.DecodeResponseBody(t, w.Body, &report)
		require.NoError(t, err)
		require.Equal(t, int64(900), report.GrandTotalCent)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, auditURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var audit queries.AuditCheck
		err = httptest.DecodeResponseBody(t, w.Body, &audit)
		require.NoError(t, err)
		require.Equal(t, int64(900), audit.AuditTotalCent, "fee log must reconcile with active income")
		require.Equal(t, int64(0), audit.DriftCent)
	})

	s.Run("Normal case: popularity ranking breaks count ties by resource id", func() {
		t := s.T()

		firstID := dbtest.CreateTestResource(t, s.DB, "court A", 10)
		secondID := dbtest.CreateTestResource(t, s.DB, "court B", 10)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Aoi Tanaka")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "front.desk", "manager")

		base := builder.NewReservationBuilder().
			WithCustomerID(customerID).
			WithStart(time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC)).
			WithDurationMin(60)

		for _, resourceID := range []uuid.UUID{firstID, secondID} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
				base.WithResourceID(resourceID).BuildCreateRequestDTO(), token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, incomeURL+"/popular", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var popular []queries.ResourcePopularity
		err := httptest.DecodeResponseBody(t, w.Body, &popular)
		require.NoError(t, err)
		require.Len(t, popular, 2)
		require.Equal(t, int64(1), popular[0].ReservationCount)
		require.Equal(t, int64(1), popular[1].ReservationCount)
		require.Less(t, popular[0].ResourceID.String(), popular[1].ResourceID.String(),
			"equal counts must be ordered by resource id ascending")
	})

	s.Run("Normal case: reservation lists are ordered chronologically", func() {
		t := s.T()

		resourceID := dbtest.CreateTestResource(t, s.DB, "court A", 10)
		customerID := dbtest.CreateTestCustomer(t, s.DB, "Aoi Tanaka")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "front.desk", "manager")

		base := builder.NewReservationBuilder().
			WithResourceID(resourceID).
			WithCustomerID(customerID).
			WithDurationMin(60)

		// Booked out of order on purpose
		for _, start := range []time.Time{
			time.Date(2026, 7, 2, 18, 0, 0, 0, time.UTC),
			time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC),
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
				base.WithStart(start).BuildCreateRequestDTO(), token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"?resource_id="+resourceID.String(), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		var listed []response.ReservationListResponse
		err := httptest.DecodeResponseBody(t, w.Body, &listed)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		require.True(t, listed[0].StartTime.Before(listed[1].StartTime),
			"lists must be ordered by start_time ascending")
	})
}

func (s *BookingSuite) TestRoleEnforcement() {
	s.Run("Error case: manager cannot mutate the catalog", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "front.desk", "manager")

		reqBody := map[string]any{"name": "court C", "price_per_min_cent": 25}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL, reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})

	s.Run("Normal case: superadmin can mutate the catalog", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "the.boss", "superadmin")

		reqBody := map[string]any{"name": "court C", "price_per_min_cent": 25}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, resourcesURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("Error case: unauthenticated requests are rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}
