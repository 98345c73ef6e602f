package valueobjects

import "fmt"

// Priority represents the urgency of a ticket.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// DefaultPriority applies when a client omits the priority field.
const DefaultPriority = PriorityMedium

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// ParsePriority validates and converts a raw priority string.
// An empty value falls back to the default.
func ParsePriority(raw string) (Priority, error) {
	if raw == "" {
		return DefaultPriority, nil
	}
	p := Priority(raw)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid ticket priority: %q", raw)
	}
	return p, nil
}
