package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type DeleteMessageCommand struct {
	Actor     user.Actor
	MessageID uint
}

type DeleteMessageUseCase struct {
	messageRepo ticket.MessageRepository
	logger      logger.Interface
}

func NewDeleteMessageUseCase(messageRepo ticket.MessageRepository, logger logger.Interface) *DeleteMessageUseCase {
	return &DeleteMessageUseCase{
		messageRepo: messageRepo,
		logger:      logger,
	}
}

// Execute deletes a message. Author-only; deleting a message never affects
// its ticket and emits no event.
func (uc *DeleteMessageUseCase) Execute(ctx context.Context, cmd DeleteMessageCommand) error {
	existing, err := uc.messageRepo.FindByID(ctx, cmd.MessageID)
	if err != nil {
		return err
	}

	if !ticket.CanModifyMessage(cmd.Actor, existing) {
		return errors.NewForbiddenError("Not authorized to modify this message")
	}

	if err := uc.messageRepo.Delete(ctx, cmd.MessageID); err != nil {
		uc.logger.Errorw("failed to delete message", "message_id", cmd.MessageID, "error", err)
		return err
	}

	uc.logger.Infow("message deleted", "message_id", cmd.MessageID, "actor_id", cmd.Actor.ID)
	return nil
}
