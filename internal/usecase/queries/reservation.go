package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type ReservationView struct {
	ID             uuid.UUID `json:"id"`
	ResourceID     uuid.UUID `json:"resource_id"`
	ResourceName   string    `json:"resource_name"`
	CustomerID     uuid.UUID `json:"customer_id"`
	CustomerName   string    `json:"customer_name"`
	StartTime      time.Time `json:"start_time"`
	DurationMin    int32     `json:"duration_min"`
	TotalPriceCent int64     `json:"total_price_cent"`
	Status         string    `json:"status"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID             uuid.UUID `json:"id"`
	ResourceID     uuid.UUID `json:"resource_id"`
	ResourceName   string    `json:"resource_name"`
	CustomerName   string    `json:"customer_name"`
	StartTime      time.Time `json:"start_time"`
	DurationMin    int32     `json:"duration_min"`
	TotalPriceCent int64     `json:"total_price_cent"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, from, to *time.Time, limit int) ([]*ReservationListItem, error)
	ListByResource(ctx context.Context, resourceID uuid.UUID, limit int) ([]*ReservationListItem, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*ReservationListItem, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	FindAll(ctx context.Context, from, to *time.Time, limit int32) ([]*ReservationListItem, error)
	FindByResourceID(ctx context.Context, resourceID uuid.UUID, limit int32) ([]*ReservationListItem, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit int32) ([]*ReservationListItem, error)
}

const defaultListLimit = 50

type reservationQueriesImpl struct {
	repo ReservationViewRepo
}

func NewReservationQueries(repo ReservationViewRepo) ReservationQueries {
	return &reservationQueriesImpl{repo: repo}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *reservationQueriesImpl) List(ctx context.Context, from, to *time.Time, limit int) ([]*ReservationListItem, error) {
	return q.repo.FindAll(ctx, from, to, clampLimit(limit))
}

func (q *reservationQueriesImpl) ListByResource(ctx context.Context, resourceID uuid.UUID, limit int) ([]*ReservationListItem, error) {
	return q.repo.FindByResourceID(ctx, resourceID, clampLimit(limit))
}

func (q *reservationQueriesImpl) ListByCustomer(ctx context.Context, customerID uuid.UUID, limit int) ([]*ReservationListItem, error) {
	return q.repo.FindByCustomerID(ctx, customerID, clampLimit(limit))
}

func clampLimit(limit int) int32 {
	if limit <= 0 || limit > 200 {
		return defaultListLimit
	}
	return int32(limit)
}
