//go:build unit || e2e

package builder

import (
	"time"

	domreservation "fieldbook/internal/domain/reservation"
	reqdto "fieldbook/internal/handler/dto/request"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ResourceID      uuid.UUID
	CustomerID      uuid.UUID
	Start           time.Time
	DurationMin     int
	PricePerMinCent int64
	Note            string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		ResourceID:      uuid.New(),
		CustomerID:      uuid.New(),
		Start:           time.Date(2026, 7, 1, 18, 0, 0, 0, time.UTC),
		DurationMin:     90,
		PricePerMinCent: 10,
		Note:            "weekly practice",
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	slot, err := domreservation.NewTimeSlot(r.Start, r.DurationMin)
	if err != nil {
		return nil, err
	}
	return domreservation.NewReservation(r.ResourceID, r.CustomerID, slot, r.PricePerMinCent, r.Note), nil
}

func (r *ReservationBuilder) BuildSlot() (domreservation.TimeSlot, error) {
	return domreservation.NewTimeSlot(r.Start, r.DurationMin)
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	note := r.Note
	return reqdto.CreateReservationRequest{
		ResourceID:  r.ResourceID,
		CustomerID:  r.CustomerID,
		StartTime:   r.Start,
		DurationMin: r.DurationMin,
		Note:        &note,
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	return &queries.ReservationView{
		ID:             uuid.New(),
		ResourceID:     r.ResourceID,
		ResourceName:   "court A",
		CustomerID:     r.CustomerID,
		CustomerName:   "Aoi Tanaka",
		StartTime:      r.Start,
		DurationMin:    int32(r.DurationMin),
		TotalPriceCent: r.PricePerMinCent * int64(r.DurationMin),
		Status:         string(domreservation.StatusActive),
		Note:           r.Note,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (r *ReservationBuilder) WithResourceID(id uuid.UUID) *ReservationBuilder {
	r.ResourceID = id
	return r
}

func (r *ReservationBuilder) WithCustomerID(id uuid.UUID) *ReservationBuilder {
	r.CustomerID = id
	return r
}

func (r *ReservationBuilder) WithStart(start time.Time) *ReservationBuilder {
	r.Start = start
	return r
}

func (r *ReservationBuilder) WithDurationMin(d int) *ReservationBuilder {
	r.DurationMin = d
	return r
}

func (r *ReservationBuilder) WithPricePerMinCent(p int64) *ReservationBuilder {
	r.PricePerMinCent = p
	return r
}

func (r *ReservationBuilder) WithNote(note string) *ReservationBuilder {
	r.Note = note
	return r
}
