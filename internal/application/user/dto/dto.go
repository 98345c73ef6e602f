// Package dto defines the wire representation of accounts.
package dto

import (
	"time"

	"helpdesk/internal/domain/user"
)

// UserDTO is the public account shape. The password hash and API key never
// appear here; the key has its own dedicated endpoint.
type UserDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromEntity converts a domain user to its wire shape.
func FromEntity(u *user.User) *UserDTO {
	return &UserDTO{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt(),
	}
}
