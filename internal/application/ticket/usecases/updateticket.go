package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/biztime"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// UpdateTicketCommand carries a partial update. String fields are applied
// only when non-empty; Phone is applied whenever present, so a client can
// blank it out.
type UpdateTicketCommand struct {
	TicketID    string
	UserID      string
	Title       string
	Description string
	Email       string
	Phone       *string
	Status      string
	Priority    string
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	fields, err := uc.buildFields(cmd)
	if err != nil {
		return nil, err
	}

	// The merge runs as a single scoped statement; there is no
	// read-modify-write window, and ownership is part of the WHERE clause.
	if err := uc.ticketRepo.UpdateForUser(ctx, cmd.TicketID, cmd.UserID, fields); err != nil {
		return nil, err
	}

	updated, err := uc.ticketRepo.GetByIDForUser(ctx, cmd.TicketID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)

	return dto.FromEntity(updated), nil
}

func (uc *UpdateTicketUseCase) buildFields(cmd UpdateTicketCommand) (ticket.UpdateFields, error) {
	fields := ticket.UpdateFields{}

	if cmd.Title != "" {
		fields["title"] = cmd.Title
	}
	if cmd.Description != "" {
		fields["description"] = cmd.Description
	}
	if cmd.Email != "" {
		fields["email"] = cmd.Email
	}
	if cmd.Phone != nil {
		fields["phone"] = cmd.Phone
	}
	if cmd.Status != "" {
		status, err := vo.ParseStatus(cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError("Invalid status value")
		}
		fields["status"] = status.String()
	}
	if cmd.Priority != "" {
		priority, err := vo.ParsePriority(cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError("Invalid priority value")
		}
		fields["priority"] = priority.String()
	}

	// Stamped even on otherwise-empty updates so updatedAt always moves.
	fields["updated_at"] = biztime.NowUTC().UnixMilli()

	return fields, nil
}
