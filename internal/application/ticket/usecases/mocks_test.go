package usecases

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

type mockTicketRepository struct {
	SaveFunc     func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc   func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListFunc     func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockMessageRepository struct {
	SaveFunc             func(ctx context.Context, msg *ticket.Message) error
	UpdateFunc           func(ctx context.Context, msg *ticket.Message) error
	FindByIDFunc         func(ctx context.Context, id uint) (*ticket.Message, error)
	ListByTicketIDFunc   func(ctx context.Context, ticketID uint, page, limit int) ([]*ticket.Message, int64, error)
	DeleteFunc           func(ctx context.Context, id uint) error
	DeleteByTicketIDFunc func(ctx context.Context, ticketID uint) error
}

func (m *mockMessageRepository) Save(ctx context.Context, msg *ticket.Message) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) Update(ctx context.Context, msg *ticket.Message) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) FindByID(ctx context.Context, id uint) (*ticket.Message, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMessageRepository) ListByTicketID(ctx context.Context, ticketID uint, page, limit int) ([]*ticket.Message, int64, error) {
	if m.ListByTicketIDFunc != nil {
		return m.ListByTicketIDFunc(ctx, ticketID, page, limit)
	}
	return nil, 0, nil
}

func (m *mockMessageRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMessageRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	if m.DeleteByTicketIDFunc != nil {
		return m.DeleteByTicketIDFunc(ctx, ticketID)
	}
	return nil
}

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	FindByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	FindByIDsFunc   func(ctx context.Context, ids []uint) (map[uint]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return map[uint]*user.User{}, nil
}

// mockPublisher records published events in order.
type mockPublisher struct {
	Events []ticket.Event
}

func (m *mockPublisher) Publish(ctx context.Context, event ticket.Event) {
	m.Events = append(m.Events, event)
}
