package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type AdminView struct {
	ID        uuid.UUID  `json:"id"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
}

type AdminQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AdminView, error)
	List(ctx context.Context) ([]*AdminView, error)
}

type AdminViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AdminView, error)
	FindAll(ctx context.Context) ([]*AdminView, error)
}

type adminQueriesImpl struct {
	repo AdminViewRepo
}

func NewAdminQueries(repo AdminViewRepo) AdminQueries {
	return &adminQueriesImpl{repo: repo}
}

func (q *adminQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AdminView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *adminQueriesImpl) List(ctx context.Context) ([]*AdminView, error) {
	return q.repo.FindAll(ctx)
}
