package usecases

import (
	"context"

	"helpdesk/internal/application/message/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type UpdateMessageCommand struct {
	Actor     user.Actor
	MessageID uint
	Content   string
}

type UpdateMessageUseCase struct {
	messageRepo ticket.MessageRepository
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewUpdateMessageUseCase(
	messageRepo ticket.MessageRepository,
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *UpdateMessageUseCase {
	return &UpdateMessageUseCase{
		messageRepo: messageRepo,
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Execute overwrites a message's content. Author-only, admins included: no
// role overrides the author check. No event is emitted for message updates.
func (uc *UpdateMessageUseCase) Execute(ctx context.Context, cmd UpdateMessageCommand) (*dto.MessageView, error) {
	existing, err := uc.messageRepo.FindByID(ctx, cmd.MessageID)
	if err != nil {
		return nil, err
	}

	if !ticket.CanModifyMessage(cmd.Actor, existing) {
		return nil, errors.NewForbiddenError("Not authorized to modify this message")
	}

	if err := existing.UpdateContent(cmd.Content); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update message", "message_id", cmd.MessageID, "error", err)
		return nil, err
	}

	parent, err := uc.ticketRepo.FindByID(ctx, existing.TicketID())
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("message updated", "message_id", cmd.MessageID, "actor_id", cmd.Actor.ID)

	return populator{uc.userRepo}.messageView(ctx, existing, parent)
}
