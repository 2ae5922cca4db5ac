package commands

import (
	"context"

	"fieldbook/internal/domain/reservation"
	reqdto "fieldbook/internal/handler/dto/request"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound    = errs.New("resource not found")
	ErrResourceNotBookable = errs.New("resource not bookable")
	ErrCustomerNotFound    = errs.New("customer not found")
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidTimeSlot     = errs.New("invalid time slot")
	ErrReservationConflict = errs.New("reservation conflict")
	ErrAlreadyCancelled    = errs.New("reservation already cancelled")
	ErrDatabaseOperation   = errs.New("database operation failed")
)

type ReservationCommands interface {
	CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	CancelReservation(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
}

func NewReservationCommands(uow shared.UnitOfWork, reservationQueries queries.ReservationQueries) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
	}
}

// CreateReservation holds the resource row lock across the overlap probe
// and the insert so concurrent bookings on the same resource serialize.
func (r *reservationCommandsImpl) CreateReservation(ctx context.Context, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	slot, err := req.ToSlot()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidTimeSlot)
	}

	var reservationID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().LockByID(ctx, tx.DB(), req.ResourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if res.Status != "active" {
			return ErrResourceNotBookable
		}

		if _, err := tx.Reads().CustomerByID(ctx, req.CustomerID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrCustomerNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		overlap, err := tx.Reservations().HasActiveOverlap(ctx, tx.DB(), req.ResourceID, slot.Start(), slot.End())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if overlap {
			return ErrReservationConflict
		}

		entity := reservation.NewReservation(req.ResourceID, req.CustomerID, slot, res.PricePerMinCent, req.GetNote())

		reservationID, err = tx.Reservations().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}

		return tx.FeeLog().Append(ctx, tx.DB(), shared.FeeLogEntry{
			ReservationID: reservationID,
			ResourceID:    req.ResourceID,
			AmountCent:    entity.TotalPriceCent(),
			Reason:        shared.FeeReasonBooked,
		})
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write: return the complete view from the read store
	view, err := r.reservationQueries.GetByID(ctx, reservationID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperation)
	}
	return view, nil
}

func (r *reservationCommandsImpl) CancelReservation(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		if snap.Status != string(reservation.StatusActive) {
			return ErrAlreadyCancelled
		}

		if err := tx.Reservations().Cancel(ctx, tx.DB(), id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAlreadyCancelled
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}

		// Compensating entry keeps the fee log append-only yet reconcilable
		return tx.FeeLog().Append(ctx, tx.DB(), shared.FeeLogEntry{
			ReservationID: snap.ID,
			ResourceID:    snap.ResourceID,
			AmountCent:    -snap.TotalPriceCent,
			Reason:        shared.FeeReasonCancelled,
		})
	})
}
