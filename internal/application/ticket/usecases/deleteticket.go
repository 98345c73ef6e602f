package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID string
	UserID   string
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if err := uc.ticketRepo.DeleteForUser(ctx, cmd.TicketID, cmd.UserID); err != nil {
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "user_id", cmd.UserID)
	return nil
}
