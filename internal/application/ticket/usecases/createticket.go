// Package usecases implements the ticket operations: create, read, list,
// search, update and delete, each gated by the authorization policy and
// followed by real-time fan-out where the contract requires it.
package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Actor       user.Actor
	Title       string
	Description string
	Status      string
	Priority    string
	AssigneeID  *uint
	Tags        []string
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	publisher  ticket.Publisher
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	publisher ticket.Publisher,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketView, error) {
	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		cmd.Status,
		cmd.Priority,
		cmd.Actor.ID,
		cmd.AssigneeID,
		cmd.Tags,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	view, err := populator{uc.userRepo}.ticketView(ctx, newTicket)
	if err != nil {
		uc.logger.Errorw("failed to populate ticket", "ticket_id", newTicket.ID(), "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "creator_id", cmd.Actor.ID)

	uc.publisher.Publish(ctx, ticket.Event{
		Name:     ticket.EventTicketCreated,
		TicketID: newTicket.ID(),
		Payload:  view,
	})

	return view, nil
}
