package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/id"
)

// Ticket is a support request owned by exactly one user. Every read and
// mutation is scoped by the owner; the entity itself never leaks across users.
type Ticket struct {
	id          string
	title       string
	description string
	email       string
	phone       *string
	status      vo.TicketStatus
	priority    vo.Priority
	userID      string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates a ticket for the given owner. Status always starts as
// open; priority falls back to medium when empty.
func NewTicket(title, description, email string, phone *string, priority vo.Priority, userID string) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if len(userID) == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if priority == "" {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	ticketID, err := id.NewTicketID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ticket ID: %w", err)
	}

	now := biztime.NowUTC()

	return &Ticket{
		id:          ticketID,
		title:       title,
		description: description,
		email:       email,
		phone:       phone,
		status:      vo.DefaultStatus,
		priority:    priority,
		userID:      userID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	ticketID string,
	title string,
	description string,
	email string,
	phone *string,
	status vo.TicketStatus,
	priority vo.Priority,
	userID string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if len(ticketID) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if len(userID) == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Ticket{
		id:          ticketID,
		title:       title,
		description: description,
		email:       email,
		phone:       phone,
		status:      status,
		priority:    priority,
		userID:      userID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() string              { return t.id }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) Email() string           { return t.email }
func (t *Ticket) Phone() *string          { return t.phone }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) UserID() string          { return t.userID }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }
