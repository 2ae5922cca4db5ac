package admin

import (
	"time"

	"github.com/google/uuid"
)

// AdminUser is the only principal in the system; customers never log in.
type AdminUser struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	role         Role
	lastLogin    *time.Time
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewAdminUser(username Username, passwordHash string, role Role) *AdminUser {
	return &AdminUser{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		isActive:     true,
	}
}

func ReconstructAdminUser(
	id uuid.UUID,
	username Username,
	passwordHash string,
	role Role,
	lastLogin *time.Time,
	isActive bool,
	createdAt, updatedAt time.Time,
) *AdminUser {
	return &AdminUser{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (a *AdminUser) IsSuperadmin() bool {
	return a.role == RoleSuperadmin
}

func (a *AdminUser) ID() uuid.UUID         { return a.id }
func (a *AdminUser) Username() Username    { return a.username }
func (a *AdminUser) PasswordHash() string  { return a.passwordHash }
func (a *AdminUser) Role() Role            { return a.role }
func (a *AdminUser) LastLogin() *time.Time { return a.lastLogin }
func (a *AdminUser) IsActive() bool        { return a.isActive }
func (a *AdminUser) CreatedAt() time.Time  { return a.createdAt }
func (a *AdminUser) UpdatedAt() time.Time  { return a.updatedAt }
