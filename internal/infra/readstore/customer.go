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

const customerViewSQL = `
SELECT id, name, email, phone, created_at, updated_at
FROM customers
WHERE id = $1`

const customerListSQL = `
SELECT id, name, email, phone, created_at, updated_at
FROM customers
WHERE $1 = '' OR name ILIKE '%' || $1 || '%'
ORDER BY name`

type CustomerReadStore struct {
	db db.DBTX
}

func NewCustomerReadStore(db db.DBTX) *CustomerReadStore {
	return &CustomerReadStore{db: db}
}

func (r *CustomerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CustomerView, error) {
	var view queries.CustomerView
	err := r.db.QueryRow(ctx, customerViewSQL, id).Scan(
		&view.ID, &view.Name, &view.Email, &view.Phone, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("customer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find customer by ID", err)
	}

	return &view, nil
}

func (r *CustomerReadStore) FindAll(ctx context.Context, nameFilter string) ([]*queries.CustomerView, error) {
	rows, err := r.db.Query(ctx, customerListSQL, nameFilter)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list customers", err)
	}
	defer rows.Close()

	var result []*queries.CustomerView
	for rows.Next() {
		var view queries.CustomerView
		if err := rows.Scan(
			&view.ID, &view.Name, &view.Email, &view.Phone, &view.CreatedAt, &view.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan customer row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read customer rows", err)
	}

	return result, nil
}
