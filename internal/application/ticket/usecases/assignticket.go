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

type AssignTicketCommand struct {
	Principal identity.Principal
	TicketID  uint
	// AgentID of zero unassigns the ticket.
	AgentID uint
}

type AssignTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	visibility *authz.VisibilityResolver
	txMgr      Transactor
	dispatcher events.EventPublisher
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.TicketRepository,
	visibility *authz.VisibilityResolver,
	txMgr Transactor,
	dispatcher events.EventPublisher,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		visibility: visibility,
		txMgr:      txMgr,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*dto.TicketDTO, error) {
	var assigned *ticket.Ticket

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if err := uc.visibility.CanManageTicket(cmd.Principal, t); err != nil {
			return err
		}

		if cmd.AgentID == 0 {
			if err := t.Unassign(); err != nil {
				return err
			}
		} else if err := t.AssignTo(cmd.AgentID); err != nil {
			return err
		}

		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}

		assigned = t
		return nil
	})
	if txErr != nil {
		uc.logger.Warnw("assign ticket failed", "ticket_id", cmd.TicketID, "error", txErr)
		return nil, txErr
	}

	if uc.dispatcher != nil && cmd.AgentID != 0 {
		if err := uc.dispatcher.Publish(ticket.NewTicketAssignedEvent(assigned, cmd.AgentID, cmd.Principal.ID)); err != nil {
			uc.logger.Warnw("failed to publish ticket assigned event", "ticket_id", assigned.ID(), "error", err)
		}
	}

	uc.logger.Infow("ticket assignment changed", "ticket_id", assigned.ID(), "agent_id", cmd.AgentID)
	return dto.ToTicketDTO(assigned, nil, nil), nil
}
