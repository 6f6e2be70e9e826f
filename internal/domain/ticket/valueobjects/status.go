// Package valueobjects contains the enumerated value types of the ticket domain.
package valueobjects

// Status is a ticket's workflow state. There is no enforced transition graph:
// any status may move to any other status by direct update.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusClosed     Status = "closed"
)

// DefaultStatus is assigned to tickets created without an explicit status.
const DefaultStatus = StatusOpen

// NewStatus parses a status string, defaulting when empty.
func NewStatus(s string) (Status, bool) {
	if s == "" {
		return DefaultStatus, true
	}
	st := Status(s)
	return st, st.IsValid()
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
