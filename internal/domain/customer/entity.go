package customer

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Customer identity record. Name and contact are deliberately not unique;
// the directory only guarantees format validity.
type Customer struct {
	id        uuid.UUID
	name      string
	email     Email
	phone     Phone
	createdAt time.Time
	updatedAt time.Time
}

func NewCustomer(name string, email Email, phone Phone) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Customer{
		id:    uuid.New(),
		name:  name,
		email: email,
		phone: phone,
	}, nil
}

func ReconstructCustomer(
	id uuid.UUID,
	name string,
	email Email,
	phone Phone,
	createdAt, updatedAt time.Time,
) *Customer {
	return &Customer{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Customer) ID() uuid.UUID        { return c.id }
func (c *Customer) Name() string         { return c.name }
func (c *Customer) Email() Email         { return c.email }
func (c *Customer) Phone() Phone         { return c.phone }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }
