package readstore

import (
	"context"
	"errors"

	"fieldbook/internal/infra"
	"fieldbook/internal/infra/db"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const resourceViewSQL = `
SELECT id, name, price_per_min_cent, status, created_at, updated_at
FROM resources
WHERE id = $1`

const resourceListSQL = `
SELECT id, name, price_per_min_cent, status, created_at, updated_at
FROM resources
ORDER BY name`

type ResourceReadStore struct {
	db db.DBTX
}

func NewResourceReadStore(db db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{db: db}
}

func (r *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	var view queries.ResourceView
	err := r.db.QueryRow(ctx, resourceViewSQL, id).Scan(
		&view.ID, &view.Name, &view.PricePerMinCent, &view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("resource not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find resource by ID", err)
	}

	return &view, nil
}

func (r *ResourceReadStore) FindAll(ctx context.Context) ([]*queries.ResourceView, error) {
	rows, err := r.db.Query(ctx, resourceListSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list resources", err)
	}
	defer rows.Close()

	var result []*queries.ResourceView
	for rows.Next() {
		var view queries.ResourceView
		if err := rows.Scan(
			&view.ID, &view.Name, &view.PricePerMinCent, &view.Status, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan resource row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read resource rows", err)
	}

	return result, nil
}
