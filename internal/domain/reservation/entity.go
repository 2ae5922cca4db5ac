package reservation

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
)

// Reservation books a resource for one customer over a time slot.
// totalPriceCent is frozen at booking time; later price changes on the
// resource never touch existing reservations.
type Reservation struct {
	id             uuid.UUID
	resourceID     uuid.UUID
	customerID     uuid.UUID
	slot           TimeSlot
	totalPriceCent int64
	status         Status
	note           string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReservation(resourceID, customerID uuid.UUID, slot TimeSlot, pricePerMinCent int64, note string) *Reservation {
	return &Reservation{
		id:             uuid.New(),
		resourceID:     resourceID,
		customerID:     customerID,
		slot:           slot,
		totalPriceCent: pricePerMinCent * int64(slot.DurationMin()),
		status:         StatusActive,
		note:           note,
	}
}

func ReconstructReservation(
	id uuid.UUID,
	resourceID, customerID uuid.UUID,
	slot TimeSlot,
	totalPriceCent int64,
	status Status,
	note string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:             id,
		resourceID:     resourceID,
		customerID:     customerID,
		slot:           slot,
		totalPriceCent: totalPriceCent,
		status:         status,
		note:           note,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusActive
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) ResourceID() uuid.UUID { return r.resourceID }
func (r *Reservation) CustomerID() uuid.UUID { return r.customerID }
func (r *Reservation) Slot() TimeSlot        { return r.slot }
func (r *Reservation) TotalPriceCent() int64 { return r.totalPriceCent }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) Note() string          { return r.note }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
