package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type ReopenTicketCommand struct {
	Principal identity.Principal
	TicketID  uint
}

type ReopenTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	visibility *authz.VisibilityResolver
	txMgr      Transactor
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewReopenTicketUseCase(
	ticketRepo ticket.TicketRepository,
	visibility *authz.VisibilityResolver,
	txMgr Transactor,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *ReopenTicketUseCase {
	return &ReopenTicketUseCase{
		ticketRepo: ticketRepo,
		visibility: visibility,
		txMgr:      txMgr,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *ReopenTicketUseCase) Execute(ctx context.Context, cmd ReopenTicketCommand) (*dto.TicketDTO, error) {
	var reopened *ticket.Ticket

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		// the creator may reopen their own case, otherwise company staff
		if t.CreatedByUserID() != cmd.Principal.ID {
			if err := uc.visibility.CanManageTicket(cmd.Principal, t); err != nil {
				return errors.NewForbiddenError("you do not have permission to reopen this ticket")
			}
		}

		if err := t.Reopen(); err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		reopened = t
		return nil
	})
	if txErr != nil {
		uc.logger.Warnw("reopen ticket failed", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	if uc.dispatcher != nil {
		if err := uc.dispatcher.Publish(ticket.NewTicketReopenedEvent(reopened, cmd.Principal.ID)); err != nil {
			uc.logger.Warnw("failed to publish ticket reopened event", "ticket_id", reopened.ID(), "error", err)
		}
	}

	uc.logger.Infow("ticket reopened", "ticket_id", reopened.ID(), "reopened_by", cmd.Principal.ID)
	return dto.ToTicketDTO(reopened, nil, nil), nil
}
