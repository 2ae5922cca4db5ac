//go:build unit

package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"fieldbook/internal/jobs"
	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/usecase/queries"
	queriesmock "fieldbook/tests/mock/queries"

	"go.uber.org/mock/gomock"
)

func newTestReconciler(t *testing.T) (*jobs.Reconciler, *queriesmock.MockIncomeQueries) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockQueries := queriesmock.NewMockIncomeQueries(ctrl)
	clk := clock.NewMockClock(time.Date(2026, 7, 1, 3, 0, 0, 0, time.UTC))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return jobs.NewReconciler(mockQueries, clk, logger), mockQueries
}

func TestReconcilerRun(t *testing.T) {
	t.Run("reconciled totals complete the run", func(t *testing.T) {
		r, mockQueries := newTestReconciler(t)
		mockQueries.EXPECT().VerifyAudit(gomock.Any()).
			Return(&queries.AuditCheck{GrandTotalCent: 900, AuditTotalCent: 900}, nil).Times(1)

		r.Run(context.Background())
	})

	t.Run("drift is reported, not resolved", func(t *testing.T) {
		r, mockQueries := newTestReconciler(t)
		check := &queries.AuditCheck{GrandTotalCent: 1500, AuditTotalCent: 900, DriftCent: 600}
		mockQueries.EXPECT().VerifyAudit(gomock.Any()).
			Return(check, queries.ErrAuditMismatch).Times(1)

		r.Run(context.Background())
	})

	t.Run("query failure does not panic the scheduler", func(t *testing.T) {
		r, mockQueries := newTestReconciler(t)
		mockQueries.EXPECT().VerifyAudit(gomock.Any()).
			Return(nil, errors.New("connection refused")).Times(1)

		r.Run(context.Background())
	})
}
