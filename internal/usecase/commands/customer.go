package commands

import (
	"context"

	reqdto "fieldbook/internal/handler/dto/request"
	"fieldbook/internal/pkg/errs"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidCustomer = errs.New("invalid customer")

type CustomerCommands interface {
	CreateCustomer(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error)
}

type customerCommandsImpl struct {
	uow             shared.UnitOfWork
	customerQueries queries.CustomerQueries
}

func NewCustomerCommands(uow shared.UnitOfWork, customerQueries queries.CustomerQueries) CustomerCommands {
	return &customerCommandsImpl{
		uow:             uow,
		customerQueries: customerQueries,
	}
}

func (c *customerCommandsImpl) CreateCustomer(ctx context.Context, req reqdto.CreateCustomerRequest) (*queries.CustomerView, error) {
	entity, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCustomer)
	}

	var customerID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		customerID, err = tx.Customers().Create(ctx, tx.DB(), entity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperation)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.customerQueries.GetByID(ctx, customerID)
}
