package ticket

import "context"

// UpdateFields is a partial set of column assignments applied in a single
// statement. Builders must never include id, user_id, or created_at.
type UpdateFields map[string]interface{}

// TicketRepository persists tickets. Every query that targets a single
// ticket is scoped by (id, owner): a ticket that exists but belongs to
// another user is indistinguishable from one that does not exist.
type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error

	// GetByIDForUser returns the ticket only when it belongs to userID.
	GetByIDForUser(ctx context.Context, ticketID, userID string) (*Ticket, error)

	// ListByUser returns all of the user's tickets, newest first.
	ListByUser(ctx context.Context, userID string) ([]*Ticket, error)

	// UpdateForUser applies the field map to the user's ticket in one
	// statement. Zero matched rows surfaces as a not-found error.
	UpdateForUser(ctx context.Context, ticketID, userID string, fields UpdateFields) error

	// DeleteForUser removes the user's ticket. Zero affected rows surfaces
	// as a not-found error.
	DeleteForUser(ctx context.Context, ticketID, userID string) error
}
