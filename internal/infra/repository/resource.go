package repository

import (
	"context"
	"errors"

	"fieldbook/internal/domain/resource"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/db"
	"fieldbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const createResourceSQL = `
INSERT INTO resources (id, name, price_per_min_cent, status)
VALUES ($1, $2, $3, $4)
RETURNING id`

const lockResourceSQL = `
SELECT id, name, price_per_min_cent, status
FROM resources
WHERE id = $1
FOR UPDATE`

const updateResourcePriceSQL = `
UPDATE resources
SET price_per_min_cent = $2, updated_at = now()
WHERE id = $1`

const updateResourceStatusSQL = `
UPDATE resources
SET status = $2, updated_at = now()
WHERE id = $1`

const deleteResourceSQL = `DELETE FROM resources WHERE id = $1`

type ResourceRepository struct{}

func NewResourceRepository() *ResourceRepository {
	return &ResourceRepository{}
}

func (r *ResourceRepository) Create(ctx context.Context, tx db.DBTX, res *resource.Resource) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createResourceSQL,
		res.ID(),
		res.Name(),
		res.PricePerMinCent(),
		string(res.Status()),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("resource name already exists", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create resource", err)
	}

	return id, nil
}

func (r *ResourceRepository) LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*shared.ResourceSnapshot, error) {
	var snap shared.ResourceSnapshot
	err := tx.QueryRow(ctx, lockResourceSQL, id).Scan(&snap.ID, &snap.Name, &snap.PricePerMinCent, &snap.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock resource", err)
	}
	return &snap, nil
}

func (r *ResourceRepository) UpdatePrice(ctx context.Context, tx db.DBTX, id uuid.UUID, pricePerMinCent int64) error {
	return r.execExpectingRow(ctx, tx, updateResourcePriceSQL, "failed to update resource price", id, pricePerMinCent)
}

func (r *ResourceRepository) UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status resource.Status) error {
	return r.execExpectingRow(ctx, tx, updateResourceStatusSQL, "failed to update resource status", id, string(status))
}

func (r *ResourceRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, deleteResourceSQL, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return infra.WrapRepoErr("resource still has reservations", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("resource not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *ResourceRepository) execExpectingRow(ctx context.Context, tx db.DBTX, sql, msg string, args ...any) error {
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("resource not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
