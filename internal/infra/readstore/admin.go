package readstore

import (
	"context"
	"errors"

	"fieldbook/internal/infra"
	"fieldbook/internal/infra/db"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const adminViewSQL = `
SELECT id, username, role, last_login, is_active, created_at
FROM admin_users
WHERE id = $1`

const adminListSQL = `
SELECT id, username, role, last_login, is_active, created_at
FROM admin_users
ORDER BY username`

const adminSnapshotByIDSQL = `
SELECT id, username, password_hash, role, is_active
FROM admin_users
WHERE id = $1`

const adminSnapshotByUsernameSQL = `
SELECT id, username, password_hash, role, is_active
FROM admin_users
WHERE username = $1`

type AdminReadStore struct {
	db db.DBTX
}

func NewAdminReadStore(db db.DBTX) *AdminReadStore {
	return &AdminReadStore{db: db}
}

func (r *AdminReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AdminView, error) {
	var view queries.AdminView
	err := r.db.QueryRow(ctx, adminViewSQL, id).Scan(
		&view.ID, &view.Username, &view.Role, &view.LastLogin, &view.IsActive, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("admin user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find admin user by ID", err)
	}

	return &view, nil
}

func (r *AdminReadStore) FindAll(ctx context.Context) ([]*queries.AdminView, error) {
	rows, err := r.db.Query(ctx, adminListSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list admin users", err)
	}
	defer rows.Close()

	var result []*queries.AdminView
	for rows.Next() {
		var view queries.AdminView
		if err := rows.Scan(
			&view.ID, &view.Username, &view.Role, &view.LastLogin, &view.IsActive, &view.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan admin user row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read admin user rows", err)
	}

	return result, nil
}

func (r *AdminReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.AdminSnapshot, error) {
	return r.scanSnapshot(r.db.QueryRow(ctx, adminSnapshotByIDSQL, id))
}

func (r *AdminReadStore) SnapshotByUsername(ctx context.Context, username string) (*shared.AdminSnapshot, error) {
	return r.scanSnapshot(r.db.QueryRow(ctx, adminSnapshotByUsernameSQL, username))
}

func (r *AdminReadStore) scanSnapshot(row pgx.Row) (*shared.AdminSnapshot, error) {
	var snap shared.AdminSnapshot
	err := row.Scan(&snap.ID, &snap.Username, &snap.PasswordHash, &snap.Role, &snap.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("admin user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load admin user snapshot", err)
	}
	return &snap, nil
}
