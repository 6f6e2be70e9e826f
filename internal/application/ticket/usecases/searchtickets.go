package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type SearchTicketsQuery struct {
	Query      string
	Status     string
	Priority   string
	AssigneeID *uint
	Tags       []string
	Pagination utils.Pagination
}

type SearchTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewSearchTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *SearchTicketsUseCase {
	return &SearchTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Execute runs a relevance-ranked full-text search. A blank search term is
// rejected before touching storage.
func (uc *SearchTicketsUseCase) Execute(ctx context.Context, query SearchTicketsQuery) (*ListTicketsResult, error) {
	term := strings.TrimSpace(query.Query)
	if term == "" {
		return nil, errors.NewValidationError("search query is required")
	}

	filter, err := buildFilter(term, query.Status, query.Priority, query.AssigneeID, query.Tags, query.Pagination)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to search tickets", "query", term, "error", err)
		return nil, err
	}

	views, err := populator{uc.userRepo}.ticketViews(ctx, tickets)
	if err != nil {
		return nil, err
	}

	return &ListTicketsResult{Tickets: views, Total: total}, nil
}
