// Package dto defines the wire representation of tickets.
package dto

import (
	"time"

	"helpdesk/internal/domain/ticket"
)

// TicketDTO is the JSON shape tickets travel in. Field names are part of
// the public API contract and must not change casing.
type TicketDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Email       string    `json:"email"`
	Phone       *string   `json:"phone"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// FromEntity converts a domain ticket to its wire shape.
func FromEntity(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:          t.ID(),
		Title:       t.Title(),
		Description: t.Description(),
		Email:       t.Email(),
		Phone:       t.Phone(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		UserID:      t.UserID(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

// FromEntities converts a slice of domain tickets, preserving order.
func FromEntities(tickets []*ticket.Ticket) []TicketDTO {
	out := make([]TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, *FromEntity(t))
	}
	return out
}
