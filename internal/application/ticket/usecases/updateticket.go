package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateTicketCommand struct {
	Actor    user.Actor
	TicketID uint
	Patch    ticket.Patch
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	publisher  ticket.Publisher
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	publisher ticket.Publisher,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketView, error) {
	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !ticket.CanModifyTicket(cmd.Actor, existing) {
		return nil, errors.NewForbiddenError("Not authorized to modify this ticket")
	}

	if err := existing.Apply(cmd.Patch); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	view, err := populator{uc.userRepo}.ticketView(ctx, existing)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("ticket updated", "ticket_id", cmd.TicketID, "actor_id", cmd.Actor.ID)

	uc.publisher.Publish(ctx, ticket.Event{
		Name:     ticket.EventTicketUpdated,
		TicketID: existing.ID(),
		Payload:  view,
	})

	return view, nil
}
