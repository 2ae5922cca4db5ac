package readstore

import (
	"context"
	"errors"
	"time"

	"fieldbook/internal/infra"
	"fieldbook/internal/infra/db"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const reservationViewSQL = `
SELECT r.id, r.resource_id, res.name, r.customer_id, c.name,
       r.start_time, r.duration_min, r.total_price_cent, r.status, r.note,
       r.created_at, r.updated_at
FROM reservations r
JOIN resources res ON res.id = r.resource_id
JOIN customers c ON c.id = r.customer_id
WHERE r.id = $1`

const reservationListSQL = `
SELECT r.id, r.resource_id, res.name, c.name,
       r.start_time, r.duration_min, r.total_price_cent, r.status, r.created_at
FROM reservations r
JOIN resources res ON res.id = r.resource_id
JOIN customers c ON c.id = r.customer_id
WHERE ($1::timestamptz IS NULL OR r.start_time >= $1)
  AND ($2::timestamptz IS NULL OR r.start_time < $2)
ORDER BY r.start_time
LIMIT $3`

const reservationListByResourceSQL = `
SELECT r.id, r.resource_id, res.name, c.name,
       r.start_time, r.duration_min, r.total_price_cent, r.status, r.created_at
FROM reservations r
JOIN resources res ON res.id = r.resource_id
JOIN customers c ON c.id = r.customer_id
WHERE r.resource_id = $1
ORDER BY r.start_time
LIMIT $2`

const reservationListByCustomerSQL = `
SELECT r.id, r.resource_id, res.name, c.name,
       r.start_time, r.duration_min, r.total_price_cent, r.status, r.created_at
FROM reservations r
JOIN resources res ON res.id = r.resource_id
JOIN customers c ON c.id = r.customer_id
WHERE r.customer_id = $1
ORDER BY r.start_time
LIMIT $2`

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var view queries.ReservationView
	err := r.db.QueryRow(ctx, reservationViewSQL, id).Scan(
		&view.ID, &view.ResourceID, &view.ResourceName, &view.CustomerID, &view.CustomerName,
		&view.StartTime, &view.DurationMin, &view.TotalPriceCent, &view.Status, &view.Note,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}

	return &view, nil
}

func (r *ReservationReadStore) FindAll(ctx context.Context, from, to *time.Time, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationListSQL, from, to, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	return scanReservationListItems(rows)
}

func (r *ReservationReadStore) FindByResourceID(ctx context.Context, resourceID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationListByResourceSQL, resourceID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by resource", err)
	}
	return scanReservationListItems(rows)
}

func (r *ReservationReadStore) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit int32) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationListByCustomerSQL, customerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations by customer", err)
	}
	return scanReservationListItems(rows)
}

func scanReservationListItems(rows pgx.Rows) ([]*queries.ReservationListItem, error) {
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(
			&item.ID, &item.ResourceID, &item.ResourceName, &item.CustomerName,
			&item.StartTime, &item.DurationMin, &item.TotalPriceCent, &item.Status, &item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read reservation rows", err)
	}

	return result, nil
}
