// Package realtime fans mutation events out to connected WebSocket clients.
// Every client receives the global broadcast stream; clients additionally
// subscribe to per-ticket topics to follow a single conversation.
package realtime

import (
	"encoding/json"
	"sync"

	"helpdesk/internal/shared/logger"
)

// Envelope is the wire format for every event frame.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub tracks connected clients and their topic subscriptions.
type Hub struct {
	clients map[*Client]bool
	// topics maps topic name to the set of subscribed clients.
	topics map[string]map[*Client]bool
	mu     sync.RWMutex

	logger logger.Interface
}

func NewHub(log logger.Interface) *Hub {
	return &Hub{
		clients: make(map[*Client]bool),
		topics:  make(map[string]map[*Client]bool),
		logger:  log,
	}
}

// Register adds a client to the global broadcast set.
func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	h.logger.Infow("websocket client connected", "client_id", client.ID, "user_id", client.UserID)
}

// Unregister removes the client from the global set and every topic it
// joined, and closes its send channel. Safe to call more than once.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for topic, members := range h.topics {
		delete(members, client)
		if len(members) == 0 {
			delete(h.topics, topic)
		}
	}
	close(client.send)

	h.logger.Infow("websocket client disconnected", "client_id", client.ID)
}

// Join subscribes the client to a topic. Joining twice is a no-op.
func (h *Hub) Join(client *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}
	members, ok := h.topics[topic]
	if !ok {
		members = make(map[*Client]bool)
		h.topics[topic] = members
	}
	members[client] = true

	h.logger.Debugw("client joined topic", "client_id", client.ID, "topic", topic)
}

// Leave unsubscribes the client from a topic. Leaving a topic that was never
// joined is a no-op.
func (h *Hub) Leave(client *Client, topic string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.topics[topic]
	if !ok {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.topics, topic)
	}

	h.logger.Debugw("client left topic", "client_id", client.ID, "topic", topic)
}

// Broadcast sends an event frame to every connected client.
func (h *Hub) Broadcast(event string, data any) {
	frame, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		h.logger.Errorw("failed to marshal event frame", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		h.send(client, frame)
	}
}

// PublishToTopic sends an event frame to every client subscribed to a topic.
func (h *Hub) PublishToTopic(topic, event string, data any) {
	frame, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		h.logger.Errorw("failed to marshal event frame", "event", event, "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.topics[topic] {
		h.send(client, frame)
	}
}

// send enqueues a frame without blocking. A client that cannot keep up has
// its frame dropped rather than stalling the hub.
func (h *Hub) send(client *Client, frame []byte) {
	select {
	case client.send <- frame:
	default:
		h.logger.Warnw("client send buffer full, dropping frame", "client_id", client.ID)
	}
}

// ClientCount reports the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// TopicMemberCount reports the number of clients subscribed to a topic.
func (h *Hub) TopicMemberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}
