package response

import (
	"time"

	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID             uuid.UUID `json:"id"`
	ResourceID     uuid.UUID `json:"resourceId"`
	ResourceName   string    `json:"resourceName"`
	CustomerID     uuid.UUID `json:"customerId"`
	CustomerName   string    `json:"customerName"`
	StartTime      time.Time `json:"startTime"`
	DurationMin    int32     `json:"durationMin"`
	TotalPriceCent int64     `json:"totalPriceCent"`
	Status         string    `json:"status"`
	Note           string    `json:"note,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID             uuid.UUID `json:"id"`
	ResourceID     uuid.UUID `json:"resourceId"`
	ResourceName   string    `json:"resourceName"`
	CustomerName   string    `json:"customerName"`
	StartTime      time.Time `json:"startTime"`
	DurationMin    int32     `json:"durationMin"`
	TotalPriceCent int64     `json:"totalPriceCent"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:             rm.ID,
		ResourceID:     rm.ResourceID,
		ResourceName:   rm.ResourceName,
		CustomerID:     rm.CustomerID,
		CustomerName:   rm.CustomerName,
		StartTime:      rm.StartTime,
		DurationMin:    rm.DurationMin,
		TotalPriceCent: rm.TotalPriceCent,
		Status:         rm.Status,
		Note:           rm.Note,
		CreatedAt:      rm.CreatedAt,
		UpdatedAt:      rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:             rm.ID,
		ResourceID:     rm.ResourceID,
		ResourceName:   rm.ResourceName,
		CustomerName:   rm.CustomerName,
		StartTime:      rm.StartTime,
		DurationMin:    rm.DurationMin,
		TotalPriceCent: rm.TotalPriceCent,
		Status:         rm.Status,
		CreatedAt:      rm.CreatedAt,
	}
}
