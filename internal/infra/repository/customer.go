package repository

import (
	"context"

	"fieldbook/internal/domain/customer"
	"fieldbook/internal/infra"
	"fieldbook/internal/infra/db"

	"github.com/google/uuid"
)

const createCustomerSQL = `
INSERT INTO customers (id, name, email, phone)
VALUES ($1, $2, $3, $4)
RETURNING id`

type CustomerRepository struct{}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{}
}

func (r *CustomerRepository) Create(ctx context.Context, tx db.DBTX, c *customer.Customer) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, createCustomerSQL,
		c.ID(),
		c.Name(),
		c.Email().Value(),
		c.Phone().Value(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create customer", err)
	}

	return id, nil
}
