package request

import (
	"fieldbook/internal/domain/customer"
)

type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func (r CreateCustomerRequest) ToDomain() (*customer.Customer, error) {
	email, err := customer.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}
	phone, err := customer.NewPhone(r.Phone)
	if err != nil {
		return nil, err
	}
	return customer.NewCustomer(r.Name, email, phone)
}
