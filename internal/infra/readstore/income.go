package readstore

import (
	"context"
	"time"

	"fieldbook/internal/infra"
	"fieldbook/internal/infra/db"
	"fieldbook/internal/usecase/queries"
)

// Income is recomputed from current prices on every read. The frozen
// per-reservation total feeds only the fee log, so a price change shows
// up here immediately and as fee-log drift in the audit cross-check.
const incomeByResourceSQL = `
SELECT res.id, res.name, COUNT(r.id), COALESCE(SUM(r.duration_min * res.price_per_min_cent), 0)
FROM resources res
LEFT JOIN reservations r
  ON r.resource_id = res.id
 AND r.status = 'active'
 AND ($1::timestamptz IS NULL OR r.start_time >= $1)
 AND ($2::timestamptz IS NULL OR r.start_time < $2)
GROUP BY res.id, res.name
ORDER BY SUM(r.duration_min * res.price_per_min_cent) DESC NULLS LAST, res.id`

const topResourcesSQL = `
SELECT res.id, res.name, COUNT(r.id) AS reservation_count
FROM resources res
JOIN reservations r ON r.resource_id = res.id AND r.status = 'active'
GROUP BY res.id, res.name
ORDER BY reservation_count DESC, res.id
LIMIT $1`

const feeLogTotalSQL = `SELECT COALESCE(SUM(amount_cent), 0) FROM fee_log`

type IncomeReadStore struct {
	db db.DBTX
}

func NewIncomeReadStore(db db.DBTX) *IncomeReadStore {
	return &IncomeReadStore{db: db}
}

func (r *IncomeReadStore) IncomeByResource(ctx context.Context, from, to *time.Time) ([]*queries.ResourceIncome, error) {
	rows, err := r.db.Query(ctx, incomeByResourceSQL, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to aggregate income by resource", err)
	}
	defer rows.Close()

	var result []*queries.ResourceIncome
	for rows.Next() {
		var row queries.ResourceIncome
		if err := rows.Scan(&row.ResourceID, &row.ResourceName, &row.ReservationCount, &row.TotalCent); err != nil {
			return nil, infra.WrapRepoErr("failed to scan income row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read income rows", err)
	}

	return result, nil
}

func (r *IncomeReadStore) TopResourcesByReservationCount(ctx context.Context, limit int32) ([]*queries.ResourcePopularity, error) {
	rows, err := r.db.Query(ctx, topResourcesSQL, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank resources", err)
	}
	defer rows.Close()

	var result []*queries.ResourcePopularity
	for rows.Next() {
		var row queries.ResourcePopularity
		if err := rows.Scan(&row.ResourceID, &row.ResourceName, &row.ReservationCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan popularity row", err)
		}
		result = append(result, &row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read popularity rows", err)
	}

	return result, nil
}

func (r *IncomeReadStore) FeeLogTotal(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, feeLogTotalSQL).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to sum fee log", err)
	}
	return total, nil
}
