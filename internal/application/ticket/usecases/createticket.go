package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Email       string
	Phone       *string
	Priority    string
	UserID      string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewCreateTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.Title == "" || cmd.Description == "" || cmd.Email == "" {
		return nil, errors.NewValidationError("Title, description, and email are required")
	}

	priority, err := vo.ParsePriority(cmd.Priority)
	if err != nil {
		return nil, errors.NewValidationError("Invalid priority value")
	}

	newTicket, err := ticket.NewTicket(cmd.Title, cmd.Description, cmd.Email, cmd.Phone, priority, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "user_id", cmd.UserID)

	return dto.FromEntity(newTicket), nil
}
