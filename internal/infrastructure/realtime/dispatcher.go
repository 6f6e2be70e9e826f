package realtime

import (
	"context"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

// Relay forwards events to other server instances. Implementations must not
// deliver an event back to the instance that relayed it.
type Relay interface {
	Relay(ctx context.Context, event ticket.Event) error
}

// Dispatcher implements the domain event publisher. Each event goes to the
// global broadcast stream and to the ticket's own topic; clients subscribed
// to both receive the frame twice, which is the documented behavior. When a
// relay is configured the event is also forwarded to sibling instances.
type Dispatcher struct {
	hub    *Hub
	relay  Relay
	logger logger.Interface
}

func NewDispatcher(hub *Hub, relay Relay, log logger.Interface) *Dispatcher {
	return &Dispatcher{
		hub:    hub,
		relay:  relay,
		logger: log,
	}
}

// Publish delivers the event to local clients synchronously and to the relay
// in the background. Failures are logged and swallowed; real-time delivery
// never fails the mutation that produced the event.
func (d *Dispatcher) Publish(ctx context.Context, event ticket.Event) {
	d.Deliver(event)

	if d.relay != nil {
		goroutine.SafeGo(d.logger, "event-relay", func() {
			if err := d.relay.Relay(context.WithoutCancel(ctx), event); err != nil {
				d.logger.Warnw("failed to relay event", "event", event.Name, "error", err)
			}
		})
	}
}

// Deliver pushes the event to local clients only. Used directly by the relay
// subscriber for events originating on other instances.
func (d *Dispatcher) Deliver(event ticket.Event) {
	name := string(event.Name)
	d.hub.Broadcast(name, event.Payload)
	d.hub.PublishToTopic(TicketTopic(event.TicketID), name, event.Payload)
}
