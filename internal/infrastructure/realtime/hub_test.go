package realtime

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/logger"
)

func newTestHub() *Hub {
	return NewHub(logger.NewLogger())
}

func newTestClient(h *Hub) *Client {
	c := NewClient(h, nil, 1)
	h.Register(c)
	return c
}

func receiveFrame(t *testing.T, c *Client) Envelope {
	t.Helper()
	select {
	case frame := <-c.send:
		var env Envelope
		require.NoError(t, json.Unmarshal(frame, &env))
		return env
	default:
		t.Fatal("expected a frame, got none")
		return Envelope{}
	}
}

func assertNoFrame(t *testing.T, c *Client) {
	t.Helper()
	select {
	case frame := <-c.send:
		t.Fatalf("expected no frame, got %s", frame)
	default:
	}
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := newTestHub()
	a := newTestClient(hub)
	b := newTestClient(hub)

	hub.Broadcast("ticket:created", map[string]any{"id": 1})

	for _, c := range []*Client{a, b} {
		env := receiveFrame(t, c)
		assert.Equal(t, "ticket:created", env.Event)
	}
}

func TestHubTopicDeliveryOnlyToMembers(t *testing.T) {
	hub := newTestHub()
	member := newTestClient(hub)
	outsider := newTestClient(hub)

	hub.Join(member, "ticket:42")
	hub.PublishToTopic("ticket:42", "message:created", map[string]any{"id": 7})

	env := receiveFrame(t, member)
	assert.Equal(t, "message:created", env.Event)
	assertNoFrame(t, outsider)
}

func TestHubLeaveStopsTopicDelivery(t *testing.T) {
	hub := newTestHub()
	c := newTestClient(hub)

	hub.Join(c, "ticket:1")
	hub.Leave(c, "ticket:1")
	hub.PublishToTopic("ticket:1", "ticket:updated", nil)

	assertNoFrame(t, c)
	assert.Zero(t, hub.TopicMemberCount("ticket:1"))
}

func TestHubLeaveWithoutJoinIsNoOp(t *testing.T) {
	hub := newTestHub()
	c := newTestClient(hub)

	hub.Leave(c, "ticket:99")

	assert.Equal(t, 1, hub.ClientCount())
}

func TestHubJoinTwiceDeliversOnce(t *testing.T) {
	hub := newTestHub()
	c := newTestClient(hub)

	hub.Join(c, "ticket:5")
	hub.Join(c, "ticket:5")
	hub.PublishToTopic("ticket:5", "ticket:updated", nil)

	receiveFrame(t, c)
	assertNoFrame(t, c)
}

func TestHubUnregisterRemovesTopicMemberships(t *testing.T) {
	hub := newTestHub()
	c := newTestClient(hub)
	hub.Join(c, "ticket:3")

	hub.Unregister(c)

	assert.Zero(t, hub.ClientCount())
	assert.Zero(t, hub.TopicMemberCount("ticket:3"))

	// Second unregister must not panic on the closed channel.
	hub.Unregister(c)
}

func TestDispatcherDeliversToBroadcastAndTopic(t *testing.T) {
	hub := newTestHub()
	subscriber := newTestClient(hub)
	hub.Join(subscriber, TicketTopic(9))

	d := NewDispatcher(hub, nil, logger.NewLogger())
	d.Publish(context.Background(), ticket.Event{
		Name:     ticket.EventTicketUpdated,
		TicketID: 9,
		Payload:  map[string]any{"id": 9},
	})

	// Topic members also sit in the broadcast set, so they get the frame
	// twice. That duplication is intentional.
	first := receiveFrame(t, subscriber)
	second := receiveFrame(t, subscriber)
	assert.Equal(t, "ticket:updated", first.Event)
	assert.Equal(t, "ticket:updated", second.Event)
	assertNoFrame(t, subscriber)
}

func TestHubControlFrames(t *testing.T) {
	hub := newTestHub()
	c := newTestClient(hub)

	c.handleControl("join:ticket:12")
	assert.Equal(t, 1, hub.TopicMemberCount("ticket:12"))

	c.handleControl("leave:ticket:12")
	assert.Zero(t, hub.TopicMemberCount("ticket:12"))

	// Malformed frames are ignored.
	c.handleControl("subscribe:ticket:12")
	c.handleControl("join:")
	assert.Zero(t, hub.TopicMemberCount("ticket:12"))
}
