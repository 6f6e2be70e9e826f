package realtime

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512

	joinPrefix  = "join:"
	leavePrefix = "leave:"
)

// Client is one WebSocket connection. Clients control their per-ticket
// subscriptions with text frames of the form "join:ticket:<id>" and
// "leave:ticket:<id>"; everything else sent by the client is ignored.
type Client struct {
	ID     string
	UserID uint

	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

func NewClient(hub *Hub, conn *websocket.Conn, userID uint) *Client {
	return &Client{
		ID:     uuid.NewString(),
		UserID: userID,
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, 256),
	}
}

// TicketTopic returns the topic name for a ticket's event stream.
func TicketTopic(ticketID uint) string {
	return fmt.Sprintf("ticket:%d", ticketID)
}

// ReadPump consumes control frames until the connection drops, then
// unregisters the client. Runs in its own goroutine per connection.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debugw("websocket read error", "client_id", c.ID, "error", err)
			}
			return
		}
		c.handleControl(string(data))
	}
}

// WritePump flushes queued frames and keeps the connection alive with pings.
// Runs in its own goroutine per connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case frame, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleControl(message string) {
	message = strings.TrimSpace(message)
	switch {
	case strings.HasPrefix(message, joinPrefix):
		if topic := strings.TrimPrefix(message, joinPrefix); topic != "" {
			c.hub.Join(c, topic)
		}
	case strings.HasPrefix(message, leavePrefix):
		if topic := strings.TrimPrefix(message, leavePrefix); topic != "" {
			c.hub.Leave(c, topic)
		}
	}
}
