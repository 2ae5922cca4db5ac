package request

import (
	"fieldbook/internal/domain/admin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type Credentials struct {
	Username admin.Username
	Password admin.Password
}

func (r LoginRequest) ToDomain() (Credentials, error) {
	username, err := admin.NewUsername(r.Username)
	if err != nil {
		return Credentials{}, err
	}
	password, err := admin.NewPassword(r.Password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Username: username, Password: password}, nil
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type CreateAdminRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role" binding:"required"`
}
