package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"fieldbook/internal/pkg/clock"
	"fieldbook/internal/usecase/queries"
)

// Reconciler checks the append-only fee log against the reservations
// table. The reservations table is the source of truth; a drift means
// a write path skipped its audit entry and needs investigating.
type Reconciler struct {
	incomeQueries queries.IncomeQueries
	clock         clock.Clock
	logger        *slog.Logger
}

func NewReconciler(incomeQueries queries.IncomeQueries, clock clock.Clock, logger *slog.Logger) *Reconciler {
	return &Reconciler{
		incomeQueries: incomeQueries,
		clock:         clock,
		logger:        logger,
	}
}

func (r *Reconciler) Run(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("audit reconciliation panicked", "panic", rec)
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	started := r.clock.Now()

	check, err := r.incomeQueries.VerifyAudit(ctx)
	switch {
	case errors.Is(err, queries.ErrAuditMismatch):
		r.logger.Error("fee log drifted from recomputed income",
			"income_total_cent", check.GrandTotalCent,
			"fee_log_total_cent", check.AuditTotalCent,
			"drift_cent", check.DriftCent)
	case err != nil:
		r.logger.Error("audit reconciliation failed", "error", err.Error())
	default:
		r.logger.Info("audit reconciliation completed",
			"total_cent", check.AuditTotalCent,
			"duration", r.clock.Now().Sub(started))
	}
}
