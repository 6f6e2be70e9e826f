// Package usecases implements the message operations on ticket threads.
package usecases

import (
	"context"

	"helpdesk/internal/application/message/dto"
	ticketdto "helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

// populator resolves author and ticket references into embedded views.
type populator struct {
	userRepo user.Repository
}

func (p populator) messageView(ctx context.Context, m *ticket.Message, parent *ticket.Ticket) (*dto.MessageView, error) {
	views, err := p.messageViews(ctx, []*ticket.Message{m}, parent)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (p populator) messageViews(ctx context.Context, messages []*ticket.Message, parent *ticket.Ticket) ([]dto.MessageView, error) {
	ids := make([]uint, 0, len(messages))
	seen := make(map[uint]bool)
	for _, m := range messages {
		if !seen[m.AuthorID()] {
			seen[m.AuthorID()] = true
			ids = append(ids, m.AuthorID())
		}
	}

	users, err := p.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	ticketRef := &dto.TicketRef{
		ID:     parent.ID(),
		Title:  parent.Title(),
		Status: parent.Status().String(),
	}

	views := make([]dto.MessageView, 0, len(messages))
	for _, m := range messages {
		views = append(views, dto.MessageView{
			ID:        m.ID(),
			Content:   m.Content(),
			Ticket:    ticketRef,
			Author:    userRef(users[m.AuthorID()]),
			CreatedAt: m.CreatedAt(),
			UpdatedAt: m.UpdatedAt(),
		})
	}
	return views, nil
}

func userRef(u *user.User) *ticketdto.UserRef {
	if u == nil {
		return nil
	}
	return &ticketdto.UserRef{ID: u.ID(), Email: u.Email(), Role: u.Role().String()}
}
