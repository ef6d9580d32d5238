package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/domain/authz"
	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Principal identity.Principal
	TicketID  uint
}

type DeleteTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	responseRepo   ticket.ResponseRepository
	attachmentRepo ticket.AttachmentRepository
	visibility     *authz.VisibilityResolver
	txMgr          Transactor
	logger         logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	responseRepo ticket.ResponseRepository,
	attachmentRepo ticket.AttachmentRepository,
	visibility *authz.VisibilityResolver,
	txMgr Transactor,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:     ticketRepo,
		responseRepo:   responseRepo,
		attachmentRepo: attachmentRepo,
		visibility:     visibility,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return err
		}

		if err := uc.visibility.CanAdministerTicket(cmd.Principal, t); err != nil {
			return err
		}

		if err := t.CanBeDeleted(); err != nil {
			return err
		}

		// responses and attachments are exclusively owned by the ticket
		if err := uc.attachmentRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		if err := uc.responseRepo.DeleteByTicketID(txCtx, t.ID()); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, t.ID())
	})
	if txErr != nil {
		uc.logger.Warnw("delete ticket failed", "ticket_id", cmd.TicketID, "error", txErr)
		return txErr
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID, "deleted_by", cmd.Principal.ID)
	return nil
}
