package usecases

import (
	"context"

	"helpdesk/internal/application/message/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListMessagesQuery struct {
	TicketID   uint
	Pagination utils.Pagination
}

type ListMessagesResult struct {
	Messages []dto.MessageView
	Total    int64
}

type ListMessagesUseCase struct {
	messageRepo ticket.MessageRepository
	ticketRepo  ticket.TicketRepository
	userRepo    user.Repository
	logger      logger.Interface
}

func NewListMessagesUseCase(
	messageRepo ticket.MessageRepository,
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		messageRepo: messageRepo,
		ticketRepo:  ticketRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// Execute lists a ticket's messages newest first. The ticket is fetched
// first both to 404 on unknown tickets and to build the embedded summary.
func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) (*ListMessagesResult, error) {
	parent, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	messages, total, err := uc.messageRepo.ListByTicketID(ctx, query.TicketID, query.Pagination.Page, query.Pagination.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list messages", "ticket_id", query.TicketID, "error", err)
		return nil, err
	}

	views, err := populator{uc.userRepo}.messageViews(ctx, messages, parent)
	if err != nil {
		return nil, err
	}

	return &ListMessagesResult{Messages: views, Total: total}, nil
}
