package usecases

import (
	"context"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

// populator resolves user references on tickets into embedded views. One
// batched lookup serves an entire page.
type populator struct {
	userRepo user.Repository
}

func (p populator) ticketView(ctx context.Context, t *ticket.Ticket) (*dto.TicketView, error) {
	views, err := p.ticketViews(ctx, []*ticket.Ticket{t})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (p populator) ticketViews(ctx context.Context, tickets []*ticket.Ticket) ([]dto.TicketView, error) {
	ids := make([]uint, 0, len(tickets)*2)
	seen := make(map[uint]bool)
	collect := func(id uint) {
		if id != 0 && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	for _, t := range tickets {
		collect(t.CreatorID())
		if t.AssigneeID() != nil {
			collect(*t.AssigneeID())
		}
	}

	users, err := p.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]dto.TicketView, 0, len(tickets))
	for _, t := range tickets {
		view := dto.TicketView{
			ID:          t.ID(),
			Title:       t.Title(),
			Description: t.Description(),
			Status:      t.Status().String(),
			Priority:    t.Priority().String(),
			Tags:        t.Tags(),
			CreatedBy:   userRef(users[t.CreatorID()]),
			CreatedAt:   t.CreatedAt(),
			UpdatedAt:   t.UpdatedAt(),
		}
		if t.AssigneeID() != nil {
			view.AssignedTo = userRef(users[*t.AssigneeID()])
		}
		views = append(views, view)
	}
	return views, nil
}

func userRef(u *user.User) *dto.UserRef {
	if u == nil {
		return nil
	}
	return &dto.UserRef{ID: u.ID(), Email: u.Email(), Role: u.Role().String()}
}
