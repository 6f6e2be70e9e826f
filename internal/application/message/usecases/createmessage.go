package usecases

import (
	"context"

	"helpdesk/internal/application/message/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type CreateMessageCommand struct {
	Actor    user.Actor
	TicketID uint
	Content  string
}

type CreateMessageUseCase struct {
	messageRepo ticket.MessageRepository
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	publisher   ticket.Publisher
	logger      logger.Interface
}

func NewCreateMessageUseCase(
	messageRepo ticket.MessageRepository,
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	publisher ticket.Publisher,
	logger logger.Interface,
) *CreateMessageUseCase {
	return &CreateMessageUseCase{
		messageRepo: messageRepo,
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

func (uc *CreateMessageUseCase) Execute(ctx context.Context, cmd CreateMessageCommand) (*dto.MessageView, error) {
	parent, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	newMessage, err := ticket.NewMessage(cmd.Content, cmd.TicketID, cmd.Actor.ID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, newMessage); err != nil {
		uc.logger.Errorw("failed to save message", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	view, err := populator{uc.userRepo}.messageView(ctx, newMessage, parent)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("message created", "message_id", newMessage.ID(), "ticket_id", cmd.TicketID)

	uc.publisher.Publish(ctx, ticket.Event{
		Name:     ticket.EventMessageCreated,
		TicketID: cmd.TicketID,
		Payload:  view,
	})

	return view, nil
}
