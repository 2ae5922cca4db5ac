package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CustomerView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CustomerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	List(ctx context.Context, nameFilter string) ([]*CustomerView, error)
}

type CustomerViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustomerView, error)
	FindAll(ctx context.Context, nameFilter string) ([]*CustomerView, error)
}

type customerQueriesImpl struct {
	repo CustomerViewRepo
}

func NewCustomerQueries(repo CustomerViewRepo) CustomerQueries {
	return &customerQueriesImpl{repo: repo}
}

func (q *customerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CustomerView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *customerQueriesImpl) List(ctx context.Context, nameFilter string) ([]*CustomerView, error) {
	return q.repo.FindAll(ctx, nameFilter)
}
