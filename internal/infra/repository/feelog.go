package repository

import (
	"context"

	"fieldbook/internal/infra"
	"fieldbook/internal/infra/db"
	"fieldbook/internal/usecase/shared"
)

const appendFeeLogSQL = `
INSERT INTO fee_log (reservation_id, resource_id, amount_cent, reason)
VALUES ($1, $2, $3, $4)`

// FeeLogRepository appends audit rows alongside booking writes.
// The table has no UPDATE or DELETE path.
type FeeLogRepository struct{}

func NewFeeLogRepository() *FeeLogRepository {
	return &FeeLogRepository{}
}

func (r *FeeLogRepository) Append(ctx context.Context, tx db.DBTX, entry shared.FeeLogEntry) error {
	_, err := tx.Exec(ctx, appendFeeLogSQL,
		entry.ReservationID,
		entry.ResourceID,
		entry.AmountCent,
		entry.Reason,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append fee log entry", err)
	}
	return nil
}
