package queries

import (
	"context"
	"time"

	"fieldbook/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrAuditMismatch signals that the append-only fee log no longer sums
// to the recomputed income, for example after a price change.
var ErrAuditMismatch = errs.New("fee log total diverged from recomputed income")

// ResourceIncome aggregates active reservations only, priced at the
// current per-minute rate; cancelled bookings never count toward income.
type ResourceIncome struct {
	ResourceID       uuid.UUID `json:"resource_id"`
	ResourceName     string    `json:"resource_name"`
	ReservationCount int64     `json:"reservation_count"`
	TotalCent        int64     `json:"total_cent"`
}

type IncomeReport struct {
	From           *time.Time        `json:"from,omitempty"`
	To             *time.Time        `json:"to,omitempty"`
	PerResource    []*ResourceIncome `json:"per_resource"`
	GrandTotalCent int64             `json:"grand_total_cent"`
}

type ResourcePopularity struct {
	ResourceID       uuid.UUID `json:"resource_id"`
	ResourceName     string    `json:"resource_name"`
	ReservationCount int64     `json:"reservation_count"`
}

type AuditCheck struct {
	GrandTotalCent int64 `json:"grand_total_cent"`
	AuditTotalCent int64 `json:"audit_total_cent"`
	DriftCent      int64 `json:"drift_cent"`
}

type IncomeQueries interface {
	Report(ctx context.Context, from, to *time.Time) (*IncomeReport, error)
	TopResources(ctx context.Context, limit int) ([]*ResourcePopularity, error)
	// AuditTotal sums the append-only fee log. It should reconcile with
	// the income report's grand total over all time.
	AuditTotal(ctx context.Context) (int64, error)
	// VerifyAudit cross-checks the recomputed income against the fee log.
	// On drift it returns the figures together with ErrAuditMismatch; the
	// fault is surfaced, never resolved.
	VerifyAudit(ctx context.Context) (*AuditCheck, error)
}

type IncomeViewRepo interface {
	IncomeByResource(ctx context.Context, from, to *time.Time) ([]*ResourceIncome, error)
	TopResourcesByReservationCount(ctx context.Context, limit int32) ([]*ResourcePopularity, error)
	FeeLogTotal(ctx context.Context) (int64, error)
}

const defaultTopResourcesLimit = 5

type incomeQueriesImpl struct {
	repo IncomeViewRepo
}

func NewIncomeQueries(repo IncomeViewRepo) IncomeQueries {
	return &incomeQueriesImpl{repo: repo}
}

func (q *incomeQueriesImpl) Report(ctx context.Context, from, to *time.Time) (*IncomeReport, error) {
	perResource, err := q.repo.IncomeByResource(ctx, from, to)
	if err != nil {
		return nil, err
	}

	var grandTotal int64
	for _, row := range perResource {
		grandTotal += row.TotalCent
	}

	return &IncomeReport{
		From:           from,
		To:             to,
		PerResource:    perResource,
		GrandTotalCent: grandTotal,
	}, nil
}

func (q *incomeQueriesImpl) TopResources(ctx context.Context, limit int) ([]*ResourcePopularity, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultTopResourcesLimit
	}
	return q.repo.TopResourcesByReservationCount(ctx, int32(limit))
}

func (q *incomeQueriesImpl) AuditTotal(ctx context.Context) (int64, error) {
	return q.repo.FeeLogTotal(ctx)
}

func (q *incomeQueriesImpl) VerifyAudit(ctx context.Context) (*AuditCheck, error) {
	report, err := q.Report(ctx, nil, nil)
	if err != nil {
		return nil, err
	}
	auditTotal, err := q.AuditTotal(ctx)
	if err != nil {
		return nil, err
	}

	check := &AuditCheck{
		GrandTotalCent: report.GrandTotalCent,
		AuditTotalCent: auditTotal,
		DriftCent:      report.GrandTotalCent - auditTotal,
	}
	if check.DriftCent != 0 {
		return check, ErrAuditMismatch
	}
	return check, nil
}
