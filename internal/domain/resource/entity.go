package resource

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyResourceName   = errors.New("resource name cannot be empty")
	ErrResourceNameTooLong = errors.New("resource name is too long (max 255 characters)")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrInvalidStatus       = errors.New("invalid resource status")
)

const MaxResourceNameLength = 255

type Status string

const (
	StatusActive      Status = "active"
	StatusInactive    Status = "inactive"
	StatusMaintenance Status = "maintenance"
)

func NewStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusActive, StatusInactive, StatusMaintenance:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// Resource is a bookable unit (field, room) priced per minute.
type Resource struct {
	id              uuid.UUID
	name            string
	pricePerMinCent int64
	status          Status
	createdAt       time.Time
	updatedAt       time.Time
}

func NewResource(name string, pricePerMinCent int64) (*Resource, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if pricePerMinCent < 0 {
		return nil, ErrNegativePrice
	}

	return &Resource{
		id:              uuid.New(),
		name:            strings.TrimSpace(name),
		pricePerMinCent: pricePerMinCent,
		status:          StatusActive,
	}, nil
}

func ReconstructResource(
	id uuid.UUID,
	name string,
	pricePerMinCent int64,
	status Status,
	createdAt, updatedAt time.Time,
) *Resource {
	return &Resource{
		id:              id,
		name:            name,
		pricePerMinCent: pricePerMinCent,
		status:          status,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// IsBookable reports whether new reservations may target this resource.
// Existing reservations stay valid regardless of status.
func (r *Resource) IsBookable() bool {
	return r.status == StatusActive
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyResourceName
	}
	if len(name) > MaxResourceNameLength {
		return ErrResourceNameTooLong
	}
	return nil
}

func (r *Resource) ID() uuid.UUID          { return r.id }
func (r *Resource) Name() string           { return r.name }
func (r *Resource) PricePerMinCent() int64 { return r.pricePerMinCent }
func (r *Resource) Status() Status         { return r.status }
func (r *Resource) CreatedAt() time.Time   { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time   { return r.updatedAt }
