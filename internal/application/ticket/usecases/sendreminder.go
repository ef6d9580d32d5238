package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type SendReminderCommand struct {
	Principal identity.Principal
	TicketID  uint
}

// SendReminderUseCase lets company staff nudge the ticket creator for an
// update. The actual mail goes out through the event dispatcher so a slow
// transport never delays the request. No state change on the ticket.
type SendReminderUseCase struct {
	ticketRepo ticket.TicketRepository
	visibility *authz.VisibilityResolver
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewSendReminderUseCase(
	ticketRepo ticket.TicketRepository,
	visibility *authz.VisibilityResolver,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *SendReminderUseCase {
	return &SendReminderUseCase{
		ticketRepo: ticketRepo,
		visibility: visibility,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *SendReminderUseCase) Execute(ctx context.Context, cmd SendReminderCommand) error {
	t, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return err
	}

	if err := uc.visibility.CanManageTicket(cmd.Principal, t); err != nil {
		return err
	}
	if t.Status().IsClosed() {
		return errors.NewTicketClosedError()
	}

	if err := uc.dispatcher.Publish(ticket.NewReminderRequestedEvent(t, cmd.Principal.ID)); err != nil {
		uc.logger.Errorw("failed to publish reminder event", "ticket_id", t.ID(), "error", err)
		return errors.NewInternalError("failed to queue reminder")
	}

	uc.logger.Infow("reminder requested", "ticket_id", t.ID(), "requested_by", cmd.Principal.ID, "creator_id", t.CreatedByUserID())
	return nil
}
