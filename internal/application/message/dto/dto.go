// Package dto holds the populated message views returned to HTTP clients and
// pushed to WebSocket subscribers.
package dto

import (
	"time"

	ticketdto "helpdesk/internal/application/ticket/dto"
)

// TicketRef is the embedded summary of the ticket a message belongs to.
type TicketRef struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// MessageView is a message with its author and ticket references populated.
type MessageView struct {
	ID        uint               `json:"id"`
	Content   string             `json:"content"`
	Ticket    *TicketRef         `json:"ticket"`
	Author    *ticketdto.UserRef `json:"author"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
