package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type ResourceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PricePerMinCent int64     `json:"price_per_min_cent"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ResourceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	List(ctx context.Context) ([]*ResourceView, error)
}

type ResourceViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ResourceView, error)
	FindAll(ctx context.Context) ([]*ResourceView, error)
}

type resourceQueriesImpl struct {
	repo ResourceViewRepo
}

func NewResourceQueries(repo ResourceViewRepo) ResourceQueries {
	return &resourceQueriesImpl{repo: repo}
}

func (q *resourceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ResourceView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *resourceQueriesImpl) List(ctx context.Context) ([]*ResourceView, error) {
	return q.repo.FindAll(ctx)
}
