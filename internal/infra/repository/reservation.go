package repository

import (
	"context"
	"time"

	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const createReservationSQL = `
INSERT INTO reservations (id, resource_id, customer_id, start_time, duration_min, total_price_cent, status, note)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id`

const hasActiveOverlapSQL = `
SELECT EXISTS (
    SELECT 1 FROM reservations
    WHERE resource_id = $1
      AND status = 'active'
      AND start_time < $3
      AND start_time + (duration_min * interval '1 minute') > $2
)`

const cancelReservationSQL = `
UPDATE reservations
SET status = 'cancelled', updated_at = now()
WHERE id = $1 AND status = 'active'`

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createReservationSQL,
		res.ID(),
		res.ResourceID(),
		res.CustomerID(),
		res.Slot().Start(),
		res.Slot().DurationMin(),
		res.TotalPriceCent(),
		string(res.Status()),
		res.Note(),
	).Scan(&id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation references unknown resource or customer", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}

	return id, nil
}

func (r *ReservationRepository) HasActiveOverlap(ctx context.Context, tx db.DBTX, resourceID uuid.UUID, start, end time.Time) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, hasActiveOverlapSQL, resourceID, start, end).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to probe for overlapping reservations", err)
	}
	return exists, nil
}

func (r *ReservationRepository) Cancel(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, cancelReservationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to cancel reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("active reservation not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
