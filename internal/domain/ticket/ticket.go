// Package ticket contains the support-case aggregate: tickets, their
// messages, the authorization policy and the mutation events fanned out
// to connected clients.
package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "helpdesk/internal/domain/ticket/valueobjects"
)

const maxTitleLength = 200

// Ticket is a support case. The creator reference is immutable and set at
// creation; the assignee is optional and mutable.
type Ticket struct {
	id          uint
	title       string
	description string
	status      vo.Status
	priority    vo.Priority
	creatorID   uint
	assigneeID  *uint
	tags        []string
	createdAt   time.Time
	updatedAt   time.Time
}

// NewTicket creates a ticket owned by creatorID. Status and priority fall
// back to their defaults when empty.
func NewTicket(title, description, status, priority string, creatorID uint, assigneeID *uint, tags []string) (*Ticket, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)

	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if creatorID == 0 {
		return nil, fmt.Errorf("creator ID is required")
	}

	st, ok := vo.NewStatus(status)
	if !ok {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	pr, ok := vo.NewPriority(priority)
	if !ok {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	if tags == nil {
		tags = []string{}
	}

	now := time.Now()
	return &Ticket{
		title:       title,
		description: description,
		status:      st,
		priority:    pr,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		tags:        tags,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	status vo.Status,
	priority vo.Priority,
	creatorID uint,
	assigneeID *uint,
	tags []string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if tags == nil {
		tags = []string{}
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		creatorID:   creatorID,
		assigneeID:  assigneeID,
		tags:        tags,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Status() vo.Status {
	return t.status
}

func (t *Ticket) Priority() vo.Priority {
	return t.priority
}

func (t *Ticket) CreatorID() uint {
	return t.creatorID
}

func (t *Ticket) AssigneeID() *uint {
	return t.assigneeID
}

func (t *Ticket) Tags() []string {
	tagsCopy := make([]string, len(t.tags))
	copy(tagsCopy, t.tags)
	return tagsCopy
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Patch describes a partial ticket update. Nil fields are left untouched;
// provided fields overwrite the current value (shallow merge).
type Patch struct {
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	AssigneeID  *uint
	Tags        []string
}

// Apply merges the patch onto the ticket. The merge is all-or-nothing: the
// first invalid field aborts without partial mutation.
func (t *Ticket) Apply(p Patch) error {
	next := *t

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		if title == "" {
			return fmt.Errorf("title is required")
		}
		if len(title) > maxTitleLength {
			return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
		}
		next.title = title
	}
	if p.Description != nil {
		description := strings.TrimSpace(*p.Description)
		if description == "" {
			return fmt.Errorf("description is required")
		}
		next.description = description
	}
	if p.Status != nil {
		st := vo.Status(*p.Status)
		if !st.IsValid() {
			return fmt.Errorf("invalid status: %s", st)
		}
		next.status = st
	}
	if p.Priority != nil {
		pr := vo.Priority(*p.Priority)
		if !pr.IsValid() {
			return fmt.Errorf("invalid priority: %s", pr)
		}
		next.priority = pr
	}
	if p.AssigneeID != nil {
		if *p.AssigneeID == 0 {
			next.assigneeID = nil
		} else {
			assignee := *p.AssigneeID
			next.assigneeID = &assignee
		}
	}
	if p.Tags != nil {
		next.tags = p.Tags
	}

	next.updatedAt = time.Now()
	*t = next
	return nil
}
