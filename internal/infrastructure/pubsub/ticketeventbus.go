// Package pubsub relays ticket events between server instances over Redis
// Pub/Sub so WebSocket clients see mutations regardless of which instance
// handled the HTTP request.
package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/goroutine"
	"helpdesk/internal/shared/logger"
)

const ticketEventChannel = "helpdesk:ticket:events"

// wireEvent is the Redis payload for a relayed event. The instance ID marks
// the origin so the publishing instance does not deliver its own events a
// second time.
type wireEvent struct {
	Name       ticket.EventName `json:"name"`
	TicketID   uint             `json:"ticket_id"`
	Payload    json.RawMessage  `json:"payload"`
	InstanceID string           `json:"instance_id"`
}

// TicketEventBus is a Redis-backed cross-instance relay for ticket events.
type TicketEventBus struct {
	client     *redis.Client
	logger     logger.Interface
	instanceID string
}

func NewTicketEventBus(client *redis.Client, log logger.Interface) *TicketEventBus {
	return &TicketEventBus{
		client:     client,
		logger:     log,
		instanceID: uuid.NewString(),
	}
}

// Relay publishes the event to Redis for delivery on sibling instances.
func (b *TicketEventBus) Relay(ctx context.Context, event ticket.Event) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}

	data, err := json.Marshal(wireEvent{
		Name:       event.Name,
		TicketID:   event.TicketID,
		Payload:    payload,
		InstanceID: b.instanceID,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal wire event: %w", err)
	}

	if err := b.client.Publish(ctx, ticketEventChannel, data).Err(); err != nil {
		return fmt.Errorf("failed to publish ticket event: %w", err)
	}

	b.logger.Debugw("ticket event relayed", "event", event.Name, "ticket_id", event.TicketID)
	return nil
}

// Subscribe consumes relayed events until the context is canceled, invoking
// the handler for events that originated on other instances. The underlying
// subscription reconnects with exponential backoff.
func (b *TicketEventBus) Subscribe(ctx context.Context, handler func(event ticket.Event)) error {
	backoff := time.Second
	maxBackoff := 30 * time.Second

	for {
		err := b.subscribe(ctx, handler)
		if ctx.Err() != nil {
			return ctx.Err()
		}

		b.logger.Warnw("ticket event subscription disconnected, reconnecting",
			"error", err,
			"backoff", backoff,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, maxBackoff)
	}
}

func (b *TicketEventBus) subscribe(ctx context.Context, handler func(event ticket.Event)) error {
	pubsub := b.client.Subscribe(ctx, ticketEventChannel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel %s: %w", ticketEventChannel, err)
	}

	b.logger.Infow("subscribed to ticket event channel", "channel", ticketEventChannel)

	ch := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			b.logger.Infow("ticket event subscriber stopped", "reason", ctx.Err())
			return ctx.Err()

		case msg, ok := <-ch:
			if !ok {
				b.logger.Warnw("ticket event channel closed")
				return nil
			}

			var event wireEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("failed to unmarshal ticket event", "error", err)
				continue
			}
			if event.InstanceID == b.instanceID {
				continue
			}

			goroutine.SafeGo(b.logger, "ticket-event-handler", func() {
				handler(ticket.Event{
					Name:     event.Name,
					TicketID: event.TicketID,
					Payload:  event.Payload,
				})
			})
		}
	}
}
