package notification

import (
	"context"
	"fmt"

	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

// TicketEmailHandler turns ticket lifecycle events into emails. It runs on
// the async dispatcher, so a slow or failing mail transport never delays
// the state change that produced the event.
type TicketEmailHandler struct {
	sender EmailSender
	users  UserDirectory
	logger logger.Interface
}

func NewTicketEmailHandler(sender EmailSender, users UserDirectory, logger logger.Interface) *TicketEmailHandler {
	return &TicketEmailHandler{
		sender: sender,
		users:  users,
		logger: logger,
	}
}

// Subscribe registers the handler for every ticket event it knows how to
// mail about.
func (h *TicketEmailHandler) Subscribe(dispatcher events.EventSubscriber) error {
	for _, eventType := range []string{
		ticket.EventTicketCreated,
		ticket.EventTicketResolved,
		ticket.EventTicketClosed,
		ticket.EventTicketReopened,
		ticket.EventResponseAdded,
		ticket.EventReminderRequested,
	} {
		if err := dispatcher.Subscribe(eventType, h); err != nil {
			return err
		}
	}
	return nil
}

func (h *TicketEmailHandler) CanHandle(eventType string) bool {
	switch eventType {
	case ticket.EventTicketCreated,
		ticket.EventTicketResolved,
		ticket.EventTicketClosed,
		ticket.EventTicketReopened,
		ticket.EventResponseAdded,
		ticket.EventReminderRequested:
		return true
	}
	return false
}

func (h *TicketEmailHandler) Handle(event events.DomainEvent) error {
	ctx := context.Background()

	switch e := event.(type) {
	case ticket.TicketCreatedEvent:
		return h.notify(ctx, e.CreatedByUserID, e.Code,
			fmt.Sprintf("Ticket %s received", e.Code),
			fmt.Sprintf("We received your ticket %q. An agent will get back to you shortly.", e.Title))

	case ticket.TicketResolvedEvent:
		return h.notify(ctx, e.CreatedByUserID, e.Code,
			fmt.Sprintf("Ticket %s resolved", e.Code),
			"An agent marked your ticket as resolved. Reply if the problem persists and it will be reopened.")

	case ticket.TicketClosedEvent:
		return h.notify(ctx, e.CreatedByUserID, e.Code,
			fmt.Sprintf("Ticket %s closed", e.Code),
			"Your ticket has been closed. You can reopen it from the portal if needed.")

	case ticket.TicketReopenedEvent:
		return h.notify(ctx, e.CreatedByUserID, e.Code,
			fmt.Sprintf("Ticket %s reopened", e.Code),
			"Your ticket was reopened and is back in the support queue.")

	case ticket.ResponseAddedEvent:
		// only agent replies are mailed to the creator; the creator does
		// not need a copy of their own message
		if e.AuthorType != "agent" || e.AuthorID == e.CreatedByUserID {
			return nil
		}
		return h.notify(ctx, e.CreatedByUserID, e.Code,
			fmt.Sprintf("New reply on ticket %s", e.Code),
			"An agent replied to your ticket. Sign in to read the full response.")

	case ticket.ReminderRequestedEvent:
		return h.notify(ctx, e.CreatedByUserID, e.Code,
			fmt.Sprintf("Reminder: ticket %s needs your attention", e.Code),
			"An agent asked for an update on your ticket. Sign in to reply.")
	}

	return nil
}

func (h *TicketEmailHandler) notify(ctx context.Context, userID uint, ticketCode, subject, body string) error {
	email, err := h.users.EmailByUserID(ctx, userID)
	if err != nil {
		h.logger.Warnw("failed to resolve recipient for ticket email", "user_id", userID, "ticket_code", ticketCode, "error", err)
		return nil
	}

	if err := h.sender.SendTicketStatusEmail(email, ticketCode, subject, body); err != nil {
		h.logger.Warnw("failed to send ticket email", "to", email, "ticket_code", ticketCode, "error", err)
	}
	return nil
}
