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

type ResolveTicketCommand struct {
	Principal identity.Principal
	TicketID  uint
}

type ResolveTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	visibility *authz.VisibilityResolver
	txMgr      Transactor
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewResolveTicketUseCase(
	ticketRepo ticket.TicketRepository,
	visibility *authz.VisibilityResolver,
	txMgr Transactor,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *ResolveTicketUseCase {
	return &ResolveTicketUseCase{
		ticketRepo: ticketRepo,
		visibility: visibility,
		txMgr:      txMgr,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *ResolveTicketUseCase) Execute(ctx context.Context, cmd ResolveTicketCommand) (*dto.TicketDTO, error) {
	var resolved *ticket.Ticket

	// the row lock serializes concurrent transitions so the second attempt
	// is evaluated against the post-transition state
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if err := uc.visibility.CanManageTicket(cmd.Principal, t); err != nil {
			return err
		}

		if err := t.Resolve(); err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		resolved = t
		return nil
	})
	if txErr != nil {
		uc.logger.Warnw("resolve ticket failed", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	if uc.dispatcher != nil {
		if err := uc.dispatcher.Publish(ticket.NewTicketResolvedEvent(resolved, cmd.Principal.ID)); err != nil {
			uc.logger.Warnw("failed to publish ticket resolved event", "ticket_id", resolved.ID(), "error", err)
		}
	}

	uc.logger.Infow("ticket resolved", "ticket_id", resolved.ID(), "resolved_by", cmd.Principal.ID)
	return dto.ToTicketDTO(resolved, nil, nil), nil
}
