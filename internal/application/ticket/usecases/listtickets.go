package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type ListTicketsQuery struct {
	// Query optionally narrows the listing with a full-text match. Unlike
	// search, a blank value simply lists everything.
	Query      string
	Status     string
	Priority   string
	AssigneeID *uint
	Tags       []string
	Pagination utils.Pagination
}

type ListTicketsResult struct {
	Tickets []dto.TicketView
	Total   int64
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := buildFilter(strings.TrimSpace(query.Query), query.Status, query.Priority, query.AssigneeID, query.Tags, query.Pagination)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	views, err := populator{uc.userRepo}.ticketViews(ctx, tickets)
	if err != nil {
		return nil, err
	}

	return &ListTicketsResult{Tickets: views, Total: total}, nil
}

// buildFilter validates the structured filter values shared by list and
// search. Unknown status or priority values are rejected rather than
// silently matching nothing.
func buildFilter(q, status, priority string, assigneeID *uint, tags []string, p utils.Pagination) (ticket.Filter, error) {
	filter := ticket.Filter{
		Query:      q,
		AssigneeID: assigneeID,
		Tags:       tags,
		Page:       p.Page,
		Limit:      p.Limit,
	}
	if status != "" {
		s := vo.Status(status)
		if !s.IsValid() {
			return ticket.Filter{}, errors.NewValidationError("invalid status filter")
		}
		filter.Status = &s
	}
	if priority != "" {
		pr := vo.Priority(priority)
		if !pr.IsValid() {
			return ticket.Filter{}, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = &pr
	}
	return filter, nil
}
