package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/application/ticket/dto"
	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/shared/events"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type CloseTicketCommand struct {
	Principal identity.Principal
	TicketID  uint
}

type CloseTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	visibility *authz.VisibilityResolver
	txMgr      Transactor
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewCloseTicketUseCase(
	ticketRepo ticket.TicketRepository,
	visibility *authz.VisibilityResolver,
	txMgr Transactor,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *CloseTicketUseCase {
	return &CloseTicketUseCase{
		ticketRepo: ticketRepo,
		visibility: visibility,
		txMgr:      txMgr,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *CloseTicketUseCase) Execute(ctx context.Context, cmd CloseTicketCommand) (*dto.TicketDTO, error) {
	var closed *ticket.Ticket
	var overridden bool

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		// closing a resolved ticket is open to the creator and to company
		// staff; closing straight from open or pending is a staff override
		overridden = !t.Status().IsResolved()
		if overridden {
			if err := uc.visibility.CanManageTicket(cmd.Principal, t); err != nil {
				return err
			}
		} else if t.CreatedByUserID() != cmd.Principal.ID {
			if err := uc.visibility.CanManageTicket(cmd.Principal, t); err != nil {
				return err
			}
		}

		if err := t.Close(); err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		closed = t
		return nil
	})
	if txErr != nil {
		uc.logger.Warnw("close ticket failed", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	if uc.dispatcher != nil {
		if err := uc.dispatcher.Publish(ticket.NewTicketClosedEvent(closed, cmd.Principal.ID, overridden)); err != nil {
			uc.logger.Warnw("failed to publish ticket closed event", "ticket_id", closed.ID(), "error", err)
		}
	}

	uc.logger.Infow("ticket closed", "ticket_id", closed.ID(), "closed_by", cmd.Principal.ID, "overridden", overridden)
	return dto.ToTicketDTO(closed, nil, nil), nil
}
