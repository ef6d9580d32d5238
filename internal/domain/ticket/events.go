package ticket

import (
	"fmt"

	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/shared/biztime"
)

const (
	EventTicketCreated     = "ticket.created"
	EventTicketAssigned    = "ticket.assigned"
	EventTicketResolved    = "ticket.resolved"
	EventTicketClosed      = "ticket.closed"
	EventTicketReopened    = "ticket.reopened"
	EventResponseAdded     = "ticket.response_added"
	EventReminderRequested = "ticket.reminder_requested"
)

func baseEvent(ticketID uint, eventType string) events.BaseEvent {
	return events.BaseEvent{
		AggregateID: fmt.Sprintf("%d", ticketID),
		EventType:   eventType,
		OccurredAt:  biztime.NowUTC(),
		Version:     1,
	}
}

type TicketCreatedEvent struct {
	events.BaseEvent
	TicketID        uint
	Code            string
	CompanyID       uint
	CreatedByUserID uint
	Title           string
	Priority        string
	CategoryID      uint
	AreaID          *uint
}

func NewTicketCreatedEvent(t *Ticket) TicketCreatedEvent {
	return TicketCreatedEvent{
		BaseEvent:       baseEvent(t.ID(), EventTicketCreated),
		TicketID:        t.ID(),
		Code:            t.Code(),
		CompanyID:       t.CompanyID(),
		CreatedByUserID: t.CreatedByUserID(),
		Title:           t.Title(),
		Priority:        t.Priority().String(),
		CategoryID:      t.CategoryID(),
		AreaID:          t.AreaID(),
	}
}

type TicketAssignedEvent struct {
	events.BaseEvent
	TicketID   uint
	Code       string
	AgentID    uint
	AssignedBy uint
}

func NewTicketAssignedEvent(t *Ticket, agentID, assignedBy uint) TicketAssignedEvent {
	return TicketAssignedEvent{
		BaseEvent:  baseEvent(t.ID(), EventTicketAssigned),
		TicketID:   t.ID(),
		Code:       t.Code(),
		AgentID:    agentID,
		AssignedBy: assignedBy,
	}
}

type TicketResolvedEvent struct {
	events.BaseEvent
	TicketID        uint
	Code            string
	CreatedByUserID uint
	ResolvedBy      uint
}

func NewTicketResolvedEvent(t *Ticket, resolvedBy uint) TicketResolvedEvent {
	return TicketResolvedEvent{
		BaseEvent:       baseEvent(t.ID(), EventTicketResolved),
		TicketID:        t.ID(),
		Code:            t.Code(),
		CreatedByUserID: t.CreatedByUserID(),
		ResolvedBy:      resolvedBy,
	}
}

type TicketClosedEvent struct {
	events.BaseEvent
	TicketID        uint
	Code            string
	CreatedByUserID uint
	ClosedBy        uint
	Overridden      bool
}

func NewTicketClosedEvent(t *Ticket, closedBy uint, overridden bool) TicketClosedEvent {
	return TicketClosedEvent{
		BaseEvent:       baseEvent(t.ID(), EventTicketClosed),
		TicketID:        t.ID(),
		Code:            t.Code(),
		CreatedByUserID: t.CreatedByUserID(),
		ClosedBy:        closedBy,
		Overridden:      overridden,
	}
}

type TicketReopenedEvent struct {
	events.BaseEvent
	TicketID        uint
	Code            string
	CreatedByUserID uint
	ReopenedBy      uint
}

func NewTicketReopenedEvent(t *Ticket, reopenedBy uint) TicketReopenedEvent {
	return TicketReopenedEvent{
		BaseEvent:       baseEvent(t.ID(), EventTicketReopened),
		TicketID:        t.ID(),
		Code:            t.Code(),
		CreatedByUserID: t.CreatedByUserID(),
		ReopenedBy:      reopenedBy,
	}
}

type ResponseAddedEvent struct {
	events.BaseEvent
	TicketID        uint
	Code            string
	CreatedByUserID uint
	ResponseID      uint
	AuthorID        uint
	AuthorType      string
}

func NewResponseAddedEvent(t *Ticket, r *Response) ResponseAddedEvent {
	return ResponseAddedEvent{
		BaseEvent:       baseEvent(t.ID(), EventResponseAdded),
		TicketID:        t.ID(),
		Code:            t.Code(),
		CreatedByUserID: t.CreatedByUserID(),
		ResponseID:      r.ID(),
		AuthorID:        r.AuthorID(),
		AuthorType:      r.AuthorType().String(),
	}
}

type ReminderRequestedEvent struct {
	events.BaseEvent
	TicketID        uint
	Code            string
	RequestedBy     uint
	CreatedByUserID uint
}

func NewReminderRequestedEvent(t *Ticket, requestedBy uint) ReminderRequestedEvent {
	return ReminderRequestedEvent{
		BaseEvent:       baseEvent(t.ID(), EventReminderRequested),
		TicketID:        t.ID(),
		Code:            t.Code(),
		RequestedBy:     requestedBy,
		CreatedByUserID: t.CreatedByUserID(),
	}
}
