package valueobjects

import "fmt"

// TicketPriority orders the urgency of a support case.
type TicketPriority string

const (
	PriorityLow    TicketPriority = "low"
	PriorityMedium TicketPriority = "medium"
	PriorityHigh   TicketPriority = "high"
)

var validTicketPriorities = map[TicketPriority]bool{
	PriorityLow:    true,
	PriorityMedium: true,
	PriorityHigh:   true,
}

func (tp TicketPriority) String() string {
	return string(tp)
}

func (tp TicketPriority) IsValid() bool {
	return validTicketPriorities[tp]
}

// Weight maps a priority to a sortable rank, higher is more urgent.
func (tp TicketPriority) Weight() int {
	switch tp {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

func NewTicketPriority(s string) (TicketPriority, error) {
	tp := TicketPriority(s)
	if !tp.IsValid() {
		return "", fmt.Errorf("invalid ticket priority: %s", s)
	}
	return tp, nil
}
