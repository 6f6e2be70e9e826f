package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Message is a reply on a ticket. Ticket and author references are immutable;
// only the content may change, and only by the author.
type Message struct {
	id        uint
	content   string
	ticketID  uint
	authorID  uint
	createdAt time.Time
	updatedAt time.Time
}

// NewMessage creates a message authored by authorID on ticketID.
// Content is trimmed and must be non-empty.
func NewMessage(content string, ticketID, authorID uint) (*Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	now := time.Now()
	return &Message{
		content:   content,
		ticketID:  ticketID,
		authorID:  authorID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructMessage rebuilds a message from persistence.
func ReconstructMessage(id uint, content string, ticketID, authorID uint, createdAt, updatedAt time.Time) (*Message, error) {
	if id == 0 {
		return nil, fmt.Errorf("message ID cannot be zero")
	}
	if content == "" {
		return nil, fmt.Errorf("content is required")
	}
	return &Message{
		id:        id,
		content:   content,
		ticketID:  ticketID,
		authorID:  authorID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (m *Message) ID() uint {
	return m.id
}

func (m *Message) Content() string {
	return m.content
}

func (m *Message) TicketID() uint {
	return m.ticketID
}

func (m *Message) AuthorID() uint {
	return m.authorID
}

func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) UpdatedAt() time.Time {
	return m.updatedAt
}

func (m *Message) SetID(id uint) error {
	if m.id != 0 {
		return fmt.Errorf("message ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("message ID cannot be zero")
	}
	m.id = id
	return nil
}

// UpdateContent overwrites the message content after trimming.
func (m *Message) UpdateContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("content is required")
	}
	m.content = content
	m.updatedAt = time.Now()
	return nil
}
