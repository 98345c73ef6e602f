package valueobjects

import "fmt"

// TicketStatus represents the lifecycle state of a ticket.
// Any status may be set at any time; there is no transition graph.
type TicketStatus string

const (
	StatusOpen       TicketStatus = "open"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
	StatusClosed     TicketStatus = "closed"
)

// DefaultStatus is the status every new ticket starts in, regardless of
// what the client supplied.
const DefaultStatus = StatusOpen

func (s TicketStatus) String() string {
	return string(s)
}

func (s TicketStatus) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
		return true
	}
	return false
}

// ParseStatus validates and converts a raw status string.
func ParseStatus(raw string) (TicketStatus, error) {
	s := TicketStatus(raw)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %q", raw)
	}
	return s, nil
}

// AllStatuses returns the complete status set, in lifecycle order.
func AllStatuses() []TicketStatus {
	return []TicketStatus{StatusOpen, StatusInProgress, StatusResolved, StatusClosed}
}
