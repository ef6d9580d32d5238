package usecases

import (
	"context"

	"github.com/resolvia-inc/resolvia/internal/domain/identity"
	"github.com/resolvia-inc/resolvia/internal/domain/ticket"
	"github.com/resolvia-inc/resolvia/internal/shared/biztime"
	"github.com/resolvia-inc/resolvia/internal/shared/errors"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
)

type DeleteResponseCommand struct {
	Principal  identity.Principal
	TicketID   uint
	ResponseID uint
}

type DeleteResponseUseCase struct {
	ticketRepo     ticket.TicketRepository
	responseRepo   ticket.ResponseRepository
	attachmentRepo ticket.AttachmentRepository
	storage        FileStorage
	txMgr          Transactor
	logger         logger.Interface
}

func NewDeleteResponseUseCase(
	ticketRepo ticket.TicketRepository,
	responseRepo ticket.ResponseRepository,
	attachmentRepo ticket.AttachmentRepository,
	storage FileStorage,
	txMgr Transactor,
	logger logger.Interface,
) *DeleteResponseUseCase {
	return &DeleteResponseUseCase{
		ticketRepo:     ticketRepo,
		responseRepo:   responseRepo,
		attachmentRepo: attachmentRepo,
		storage:        storage,
		txMgr:          txMgr,
		logger:         logger,
	}
}

func (uc *DeleteResponseUseCase) Execute(ctx context.Context, cmd DeleteResponseCommand) error {
	r, err := uc.responseRepo.GetByID(ctx, cmd.ResponseID)
	if err != nil {
		return err
	}
	if r.TicketID() != cmd.TicketID {
		return errors.NewNotFoundError("response not found")
	}

	// a closed ticket freezes its whole thread, even inside the authorial
	// delete window
	t, err := uc.ticketRepo.GetByID(ctx, r.TicketID())
	if err != nil {
		return err
	}
	if t.Status().IsClosed() {
		return errors.NewTicketClosedError()
	}

	if err := r.CanBeDeletedBy(cmd.Principal.ID, biztime.NowUTC()); err != nil {
		uc.logger.Warnw("response delete rejected", "response_id", cmd.ResponseID, "error", err)
		return err
	}

	scoped, err := uc.attachmentRepo.ListByResponseID(ctx, r.ID())
	if err != nil {
		return err
	}

	txErr := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, a := range scoped {
			if err := uc.attachmentRepo.Delete(txCtx, a.ID()); err != nil {
				return err
			}
		}
		return uc.responseRepo.Delete(txCtx, r.ID())
	})
	if txErr != nil {
		return txErr
	}

	// storage cleanup after commit, a leftover blob is harmless
	for _, a := range scoped {
		if err := uc.storage.Remove(ctx, a.StoragePath()); err != nil {
			uc.logger.Warnw("failed to remove attachment blob", "path", a.StoragePath(), "error", err)
		}
	}

	uc.logger.Infow("response deleted", "response_id", cmd.ResponseID)
	return nil
}
