package ticket

import "helpdesk/internal/application/ticket/usecases"

// CreateTicketRequest is the create payload. A client-supplied status is
// accepted and ignored; new tickets always start open.
type CreateTicketRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
}

func (r *CreateTicketRequest) ToCommand(userID string) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:       r.Title,
		Description: r.Description,
		Email:       r.Email,
		Phone:       r.Phone,
		Priority:    r.Priority,
		UserID:      userID,
	}
}

// UpdateTicketRequest is a partial update. Absent fields are left alone;
// phone distinguishes absent from explicitly blank.
type UpdateTicketRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID, userID string) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:    ticketID,
		UserID:      userID,
		Title:       r.Title,
		Description: r.Description,
		Email:       r.Email,
		Phone:       r.Phone,
		Status:      r.Status,
		Priority:    r.Priority,
	}
}
