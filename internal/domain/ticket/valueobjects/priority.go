package valueobjects

// Priority is the urgency classification of a ticket.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultPriority is assigned to tickets created without an explicit priority.
const DefaultPriority = PriorityMedium

// NewPriority parses a priority string, defaulting when empty.
func NewPriority(s string) (Priority, bool) {
	if s == "" {
		return DefaultPriority, true
	}
	p := Priority(s)
	return p, p.IsValid()
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}
