package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    user.Actor
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	messageRepo ticket.MessageRepository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Execute deletes a ticket and all of its messages. Messages go first so an
// interrupted cascade leaves the ticket visible rather than orphaning
// messages. No event is emitted for deletes.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if !ticket.CanModifyTicket(cmd.Actor, existing) {
		return errors.NewForbiddenError("Not authorized to modify this ticket")
	}

	if err := uc.messageRepo.DeleteByTicketID(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to cascade-delete messages", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)
	return nil
}
