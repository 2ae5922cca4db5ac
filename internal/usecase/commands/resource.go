package commands

import (
	"context"

	"fieldbook/internal/domain/resource"
	reqdto "fieldbook/internal/handler/dto/request"
	"fieldbook/internal/infra"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrDuplicateResourceName = errs.New("resource name already exists")
	ErrResourceHasBookings   = errs.New("resource still has reservations")
	ErrInvalidResource       = errs.New("invalid resource")
)

type ResourceCommands interface {
	CreateResource(ctx context.Context, req reqdto.CreateResourceRequest) (*queries.ResourceView, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, req reqdto.UpdateResourcePriceRequest) error
	UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateResourceStatusRequest) error
	DeleteResource(ctx context.Context, id uuid.UUID) error
}

type resourceCommandsImpl struct {
	uow             shared.UnitOfWork
	resourceQueries queries.ResourceQueries
}

func NewResourceCommands(uow shared.UnitOfWork, resourceQueries queries.ResourceQueries) ResourceCommands {
	return &resourceCommandsImpl{
		uow:             uow,
		resourceQueries: resourceQueries,
	}
}

func (r *resourceCommandsImpl) CreateResource(ctx context.Context, req reqdto.CreateResourceRequest) (*queries.ResourceView, error) {
	entity, err := resource.NewResource(req.Name, req.PricePerMinCent)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidResource)
	}

	var resourceID uuid.UUID
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		resourceID, err = tx.Resources().Create(ctx, tx.DB(), entity)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateResourceName
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.resourceQueries.GetByID(ctx, resourceID)
}

// UpdatePrice only affects future bookings; existing reservations keep
// the price frozen at booking time.
func (r *resourceCommandsImpl) UpdatePrice(ctx context.Context, id uuid.UUID, req reqdto.UpdateResourcePriceRequest) error {
	if req.PricePerMinCent < 0 {
		return errs.Mark(resource.ErrNegativePrice, ErrInvalidResource)
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Resources().UpdatePrice(ctx, tx.DB(), id, req.PricePerMinCent); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
}

func (r *resourceCommandsImpl) UpdateStatus(ctx context.Context, id uuid.UUID, req reqdto.UpdateResourceStatusRequest) error {
	status, err := resource.NewStatus(req.Status)
	if err != nil {
		return errs.Mark(err, ErrInvalidResource)
	}

	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Resources().UpdateStatus(ctx, tx.DB(), id, status); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
}

func (r *resourceCommandsImpl) DeleteResource(ctx context.Context, id uuid.UUID) error {
	return r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Resources().Delete(ctx, tx.DB(), id); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrResourceNotFound
			case infra.IsKind(err, infra.KindForeignKeyViolated):
				return ErrResourceHasBookings
			default:
				return errs.Mark(err, ErrDatabaseOperation)
			}
		}
		return nil
	})
}
