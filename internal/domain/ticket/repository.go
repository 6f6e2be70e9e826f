package ticket

import "context"

// TicketRepository defines persistence operations for tickets.
type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	// List returns one page of tickets matching the filter plus the total
	// count of matching records ignoring pagination.
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	Delete(ctx context.Context, id uint) error
}

// MessageRepository defines persistence operations for messages.
type MessageRepository interface {
	Save(ctx context.Context, m *Message) error
	Update(ctx context.Context, m *Message) error
	FindByID(ctx context.Context, id uint) (*Message, error)
	// ListByTicketID returns one page of the ticket's messages ordered by
	// descending creation time, plus the total count.
	ListByTicketID(ctx context.Context, ticketID uint, page, limit int) ([]*Message, int64, error)
	Delete(ctx context.Context, id uint) error
	// DeleteByTicketID removes every message on the ticket. Used by the
	// ticket-delete cascade.
	DeleteByTicketID(ctx context.Context, ticketID uint) error
}
