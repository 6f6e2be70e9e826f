// Package dto holds the populated ticket views returned to HTTP clients and
// pushed to WebSocket subscribers.
package dto

import "time"

// UserRef is the embedded projection of a referenced user.
type UserRef struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TicketView is a ticket with its user references populated. A reference to
// a deleted user renders as null rather than failing the read.
type TicketView struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	Tags        []string  `json:"tags"`
	CreatedBy   *UserRef  `json:"createdBy"`
	AssignedTo  *UserRef  `json:"assignedTo"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
