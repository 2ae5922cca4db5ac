//go:build unit || e2e

package builder

import (
	"time"

	domadmin "fieldbook/internal/domain/admin"
	reqdto "fieldbook/internal/handler/dto/request"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AdminBuilder struct {
	Username     string
	PasswordHash string
	Role         string
}

func NewAdminBuilder() *AdminBuilder {
	return &AdminBuilder{
		Username:     "front.desk",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Role:         "manager",
	}
}

func (a *AdminBuilder) With(mutate func(*AdminBuilder)) *AdminBuilder {
	mutate(a)
	return a
}

func (a *AdminBuilder) BuildDomain() (*domadmin.AdminUser, error) {
	username, err := domadmin.NewUsername(a.Username)
	if err != nil {
		return nil, err
	}
	role, err := domadmin.NewRole(a.Role)
	if err != nil {
		return nil, err
	}
	return domadmin.NewAdminUser(username, a.PasswordHash, role), nil
}

func (a *AdminBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: a.Username,
		Password: "correct-horse-battery",
	}
}

func (a *AdminBuilder) BuildView() *queries.AdminView {
	return &queries.AdminView{
		ID:        uuid.New(),
		Username:  a.Username,
		Role:      a.Role,
		IsActive:  true,
		CreatedAt: time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC),
	}
}

func (a *AdminBuilder) WithUsername(username string) *AdminBuilder {
	a.Username = username
	return a
}

func (a *AdminBuilder) WithRole(role string) *AdminBuilder {
	a.Role = role
	return a
}

func (a *AdminBuilder) AsSuperadmin() *AdminBuilder {
	a.Role = "superadmin"
	return a
}
