package ticket

import "context"

// EventName identifies a mutation event pushed to connected clients.
type EventName string

const (
	EventTicketCreated  EventName = "ticket:created"
	EventTicketUpdated  EventName = "ticket:updated"
	EventMessageCreated EventName = "message:created"
)

// Event is a mutation event. Payload is the full populated entity view that
// was returned to the HTTP caller. TicketID scopes the per-ticket topic.
//
// Deletes emit no event, and message updates emit no event. These gaps are
// part of the public contract and are pinned by tests.
type Event struct {
	Name     EventName
	TicketID uint
	Payload  any
}

// Publisher delivers events to the real-time transports. Delivery is
// best-effort and fire-and-forget: implementations must never return a
// failure to the mutating operation, so Publish has no error result.
type Publisher interface {
	Publish(ctx context.Context, event Event)
}

// NopPublisher discards all events. Used where no transport is wired.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) {}
