package request

import (
	"strings"
	"time"

	"fieldbook/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ResourceID  uuid.UUID `json:"resource_id" binding:"required"`
	CustomerID  uuid.UUID `json:"customer_id" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	DurationMin int       `json:"duration_min" binding:"required"`
	Note        *string   `json:"note,omitempty"`
}

func (r CreateReservationRequest) ToSlot() (reservation.TimeSlot, error) {
	return reservation.NewTimeSlot(r.StartTime, r.DurationMin)
}

func (r CreateReservationRequest) GetNote() string {
	if r.Note == nil {
		return ""
	}
	return strings.TrimSpace(*r.Note)
}
