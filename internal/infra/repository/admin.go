package repository

import (
	"context"

	"fieldbook/internal/domain/admin"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const createAdminSQL = `
INSERT INTO admin_users (id, username, password_hash, role, is_active)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

const updateLastLoginSQL = `
UPDATE admin_users
SET last_login = now(), updated_at = now()
WHERE id = $1`

const updatePasswordHashSQL = `
UPDATE admin_users
SET password_hash = $2, updated_at = now()
WHERE id = $1`

const setAdminActiveSQL = `
UPDATE admin_users
SET is_active = $2, updated_at = now()
WHERE id = $1`

type AdminRepository struct{}

func NewAdminRepository() *AdminRepository {
	return &AdminRepository{}
}

func (r *AdminRepository) Create(ctx context.Context, tx db.DBTX, a *admin.AdminUser) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createAdminSQL,
		a.ID(),
		a.Username().Value(),
		a.PasswordHash(),
		a.Role().String(),
		a.IsActive(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("username already taken", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create admin user", err)
	}

	return id, nil
}

func (r *AdminRepository) UpdateLastLogin(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	return r.execExpectingRow(ctx, tx, updateLastLoginSQL, "failed to update last login", id)
}

func (r *AdminRepository) UpdatePasswordHash(ctx context.Context, tx db.DBTX, id uuid.UUID, hash string) error {
	return r.execExpectingRow(ctx, tx, updatePasswordHashSQL, "failed to update password hash", id, hash)
}

func (r *AdminRepository) SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error {
	return r.execExpectingRow(ctx, tx, setAdminActiveSQL, "failed to update admin active flag", id, active)
}

func (r *AdminRepository) execExpectingRow(ctx context.Context, tx db.DBTX, sql, msg string, args ...any) error {
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return infra.WrapRepoErr(msg, err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("admin user not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
