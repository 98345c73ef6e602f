package user

import "helpdesk/internal/application/user/usecases"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (r *RegisterRequest) ToCommand() usecases.RegisterCommand {
	return usecases.RegisterCommand{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) ToCommand(ipAddress, userAgent string) usecases.LoginCommand {
	return usecases.LoginCommand{
		Email:     r.Email,
		Password:  r.Password,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}
