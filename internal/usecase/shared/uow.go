package shared

import (
	"context"
	"time"

	"fieldbook/internal/domain/admin"
	"fieldbook/internal/domain/customer"
	"fieldbook/internal/domain/reservation"
	"fieldbook/internal/domain/resource"
	"fieldbook/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Resources() ResourceRepository
	Customers() CustomerRepository
	Admins() AdminRepository
	FeeLog() FeeLogRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ResourceByID(ctx context.Context, id uuid.UUID) (*ResourceSnapshot, error)
	CustomerByID(ctx context.Context, id uuid.UUID) (*CustomerSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	AdminByID(ctx context.Context, id uuid.UUID) (*AdminSnapshot, error)
	AdminByUsername(ctx context.Context, username string) (*AdminSnapshot, error)
}

// Minimal snapshots for command read operations
type ResourceSnapshot struct {
	ID              uuid.UUID
	Name            string
	PricePerMinCent int64
	Status          string
}

type CustomerSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ReservationSnapshot struct {
	ID             uuid.UUID
	ResourceID     uuid.UUID
	CustomerID     uuid.UUID
	StartTime      time.Time
	DurationMin    int
	TotalPriceCent int64
	Status         string
}

type AdminSnapshot struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	Role         string
	IsActive     bool
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error)
	// HasActiveOverlap probes for active reservations intersecting the
	// half-open interval [start, end) on the resource. Callers must hold
	// the resource row lock for the probe-then-insert to be race free.
	HasActiveOverlap(ctx context.Context, tx db.DBTX, resourceID uuid.UUID, start, end time.Time) (bool, error)
	Cancel(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ResourceRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *resource.Resource) (uuid.UUID, error)
	// LockByID takes a FOR UPDATE row lock, serializing bookings per resource.
	LockByID(ctx context.Context, tx db.DBTX, id uuid.UUID) (*ResourceSnapshot, error)
	UpdatePrice(ctx context.Context, tx db.DBTX, id uuid.UUID, pricePerMinCent int64) error
	UpdateStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status resource.Status) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type CustomerRepository interface {
	Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error)
}

type AdminRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *admin.AdminUser) (uuid.UUID, error)
	UpdateLastLogin(ctx context.Context, tx db.DBTX, id uuid.UUID) error
	UpdatePasswordHash(ctx context.Context, tx db.DBTX, id uuid.UUID, hash string) error
	SetActive(ctx context.Context, tx db.DBTX, id uuid.UUID, active bool) error
}

// FeeLogEntry is an append-only audit record. Negative amounts record
// cancellations; the reservations table stays the source of truth.
type FeeLogEntry struct {
	ReservationID uuid.UUID
	ResourceID    uuid.UUID
	AmountCent    int64
	Reason        string
}

const (
	FeeReasonBooked    = "booked"
	FeeReasonCancelled = "cancelled"
)

type FeeLogRepository interface {
	Append(ctx context.Context, tx db.DBTX, entry FeeLogEntry) error
}
